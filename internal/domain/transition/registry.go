package transition

import (
	"fmt"

	"fixtrack/internal/domain/entity"
)

// Registry enumerates every legal edge in the device lifecycle graph as
// static configuration. Edge order is declaration order; the evaluator and
// the UI preserve it.
type Registry struct {
	transitions []StatusTransition
}

// NewRegistry builds the canonical transition table. Completed repairs hand
// over directly to customer care gated on payment settlement; there is no
// intermediate payment-processing status.
func NewRegistry() *Registry {
	techAdmin := entity.Roles{entity.RoleTechnician, entity.RoleAdmin}
	adminCare := entity.Roles{entity.RoleAdmin, entity.RoleCustomerCare}
	allRoles := entity.Roles{entity.RoleTechnician, entity.RoleAdmin, entity.RoleCustomerCare}

	return &Registry{
		transitions: []StatusTransition{
			{
				From:         entity.StatusAssigned,
				To:           entity.StatusDiagnosisStarted,
				Label:        "Start Diagnosis",
				Description:  "Begin the diagnostic process",
				AllowedRoles: techAdmin,
			},
			{
				From:          entity.StatusDiagnosisStarted,
				To:            entity.StatusAwaitingParts,
				Label:         "Request Spare Parts",
				Description:   "Parts needed for repair - triggers spare parts selection",
				RequiresNotes: true,
				AllowedRoles:  techAdmin,
			},
			{
				From:         entity.StatusDiagnosisStarted,
				To:           entity.StatusInRepair,
				Label:        "Start Repair",
				Description:  "Begin repair work without spare parts",
				AllowedRoles: techAdmin,
			},
			{
				From:         entity.StatusAwaitingParts,
				To:           entity.StatusPartsArrived,
				Label:        "Receive Spare Parts",
				Description:  "Mark all requested parts as received and ready for repair",
				AllowedRoles: allRoles,
				Validate:     partsArrivedPrecondition,
			},
			{
				From:         entity.StatusAwaitingParts,
				To:           entity.StatusInRepair,
				Label:        "Start Repair (Parts Available)",
				Description:  "Begin repair with available spare parts",
				AllowedRoles: techAdmin,
				Validate:     partsReadyPrecondition,
			},
			{
				From:         entity.StatusPartsArrived,
				To:           entity.StatusInRepair,
				Label:        "Start Repair",
				Description:  "Begin repair work with received parts",
				AllowedRoles: techAdmin,
			},
			{
				From:          entity.StatusInRepair,
				To:            entity.StatusReassembledTesting,
				Label:         "Start Testing",
				Description:   "Repair completed, begin testing",
				RequiresNotes: true,
				AllowedRoles:  techAdmin,
			},
			{
				From:          entity.StatusInRepair,
				To:            entity.StatusFailed,
				Label:         "Mark Failed",
				Description:   "Repair cannot be completed",
				RequiresNotes: true,
				AllowedRoles:  techAdmin,
			},
			{
				From:          entity.StatusReassembledTesting,
				To:            entity.StatusRepairComplete,
				Label:         "Testing Passed",
				Description:   "All tests passed, device ready for customer",
				RequiresNotes: true,
				AllowedRoles:  techAdmin,
			},
			{
				From:          entity.StatusReassembledTesting,
				To:            entity.StatusInRepair,
				Label:         "Back to Repair",
				Description:   "Testing failed, return to repair",
				RequiresNotes: true,
				AllowedRoles:  techAdmin,
			},
			{
				From:         entity.StatusRepairComplete,
				To:           entity.StatusReturnedToCustomerCare,
				Label:        "Send to Customer Care",
				Description:  "Device ready for customer pickup",
				AllowedRoles: allRoles,
				Validate:     settlementPrecondition,
			},
			{
				From:         entity.StatusReturnedToCustomerCare,
				To:           entity.StatusDone,
				Label:        "Mark Done",
				Description:  "Customer picked up the device",
				AllowedRoles: adminCare,
				Validate:     settlementPrecondition,
			},
			{
				From:          entity.StatusFailed,
				To:            entity.StatusReturnedToCustomerCare,
				Label:         "Send to Customer Care",
				Description:   "Send failed device to customer care for customer notification",
				RequiresNotes: true,
				AllowedRoles:  techAdmin,
			},
			{
				From:          entity.StatusFailed,
				To:            entity.StatusDone,
				Label:         "Return to Customer",
				Description:   "Close the failed repair after notifying the customer",
				RequiresNotes: true,
				AllowedRoles:  adminCare,
			},
		},
	}
}

// TransitionsFrom returns the edges leaving the given status in declaration
// order. The result is a copy; callers may not mutate the table.
func (r *Registry) TransitionsFrom(status entity.DeviceStatus) []StatusTransition {
	var out []StatusTransition
	for _, t := range r.transitions {
		if t.From == status {
			out = append(out, t)
		}
	}

	return out
}

// Find looks up the edge between two statuses. The second return value is
// false when no such edge exists, which callers surface as an invalid
// transition.
func (r *Registry) Find(from, to entity.DeviceStatus) (StatusTransition, bool) {
	for _, t := range r.transitions {
		if t.From == from && t.To == to {
			return t, true
		}
	}

	return StatusTransition{}, false
}

// All returns every edge in declaration order.
func (r *Registry) All() []StatusTransition {
	out := make([]StatusTransition, len(r.transitions))
	copy(out, r.transitions)

	return out
}

// partsArrivedPrecondition gates "Receive Spare Parts": every requested part
// must have reached received or used.
func partsArrivedPrecondition(_ *entity.Device, snap Snapshot) Result {
	if len(snap.Parts) == 0 {
		return invalid("No spare parts have been requested for this device.")
	}

	pending := 0
	for _, p := range snap.Parts {
		if p.Status.IsPending() {
			pending++
		}
	}
	if pending > 0 {
		return invalid(fmt.Sprintf("%d spare parts have not arrived yet.", pending))
	}

	return valid()
}

// partsReadyPrecondition gates starting repair from awaiting-parts.
func partsReadyPrecondition(_ *entity.Device, snap Snapshot) Result {
	if ok, reason := CanStartRepair(snap.Parts); !ok {
		return invalid(reason)
	}

	return valid()
}

// settlementPrecondition gates every handover edge on payment settlement.
func settlementPrecondition(device *entity.Device, snap Snapshot) Result {
	res := CanHandover(device.RepairCost, snap.Payments.TotalPaid, snap.Payments.TotalPending)
	if !res.Settled {
		return invalid(res.Reason)
	}

	return valid()
}
