package transition

import (
	"testing"

	"fixtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvaluator() *Evaluator {
	return NewEvaluator(NewRegistry())
}

func TestAvailableTransitions_OnlyEdgesFromCurrentStatus(t *testing.T) {
	eval := newTestEvaluator()
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	for _, status := range []entity.DeviceStatus{
		entity.StatusAssigned,
		entity.StatusDiagnosisStarted,
		entity.StatusInRepair,
		entity.StatusFailed,
		entity.StatusDone,
	} {
		device := &entity.Device{ID: uuid.New(), Status: status}
		for _, tr := range eval.AvailableTransitions(device, admin, Snapshot{}) {
			assert.Equal(t, status, tr.From, "stray edge for status %s", status)
		}
	}
}

func TestAvailableTransitions_UnassignedTechnicianGetsNothing(t *testing.T) {
	eval := newTestEvaluator()
	assignee := uuid.New()
	other := entity.Actor{ID: uuid.New(), Role: entity.RoleTechnician}

	for _, status := range []entity.DeviceStatus{
		entity.StatusAssigned,
		entity.StatusDiagnosisStarted,
		entity.StatusInRepair,
		entity.StatusRepairComplete,
	} {
		device := &entity.Device{ID: uuid.New(), Status: status, AssignedTo: &assignee}
		assert.Empty(t, eval.AvailableTransitions(device, other, Snapshot{}),
			"unassigned technician must get no transitions in status %s", status)
	}
}

func TestAvailableTransitions_AssignedTechnician(t *testing.T) {
	eval := newTestEvaluator()
	techID := uuid.New()
	tech := entity.Actor{ID: techID, Role: entity.RoleTechnician}
	device := &entity.Device{ID: uuid.New(), Status: entity.StatusAssigned, AssignedTo: &techID}

	available := eval.AvailableTransitions(device, tech, Snapshot{})
	require.Len(t, available, 1)
	assert.Equal(t, entity.StatusDiagnosisStarted, available[0].To)
}

func TestAvailableTransitions_RoleFilter(t *testing.T) {
	eval := newTestEvaluator()
	care := entity.Actor{ID: uuid.New(), Role: entity.RoleCustomerCare}
	device := &entity.Device{ID: uuid.New(), Status: entity.StatusInRepair}

	// Both in-repair edges are technician/admin only.
	assert.Empty(t, eval.AvailableTransitions(device, care, Snapshot{}))
}

func TestAvailableTransitions_CustomerCareReceivesParts(t *testing.T) {
	eval := newTestEvaluator()
	care := entity.Actor{ID: uuid.New(), Role: entity.RoleCustomerCare}
	device := &entity.Device{ID: uuid.New(), Status: entity.StatusAwaitingParts}
	snap := Snapshot{Parts: partsWithStatuses(entity.PartReceived, entity.PartReceived, entity.PartReceived)}

	available := eval.AvailableTransitions(device, care, snap)
	require.Len(t, available, 1)
	assert.Equal(t, entity.StatusPartsArrived, available[0].To)
	assert.False(t, available[0].RequiresNotes)
}

func TestAvailableTransitions_PreconditionFiltersEdges(t *testing.T) {
	eval := newTestEvaluator()
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
	device := &entity.Device{ID: uuid.New(), Status: entity.StatusAwaitingParts}

	// Pending parts: neither "Receive Spare Parts" nor "Start Repair" passes.
	snap := Snapshot{Parts: partsWithStatuses(entity.PartNeeded, entity.PartReceived)}
	assert.Empty(t, eval.AvailableTransitions(device, admin, snap))

	// All received: both edges open up.
	snap = Snapshot{Parts: partsWithStatuses(entity.PartReceived, entity.PartReceived)}
	available := eval.AvailableTransitions(device, admin, snap)
	require.Len(t, available, 2)
	assert.Equal(t, entity.StatusPartsArrived, available[0].To)
	assert.Equal(t, entity.StatusInRepair, available[1].To)
}

func TestAvailableTransitions_SettlementGatesHandover(t *testing.T) {
	eval := newTestEvaluator()
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
	device := &entity.Device{ID: uuid.New(), Status: entity.StatusRepairComplete, RepairCost: 20000}

	unpaid := Snapshot{Payments: entity.PaymentAggregate{TotalPaid: 0}}
	assert.Empty(t, eval.AvailableTransitions(device, admin, unpaid))

	paid := Snapshot{Payments: entity.PaymentAggregate{TotalPaid: 20000}}
	available := eval.AvailableTransitions(device, admin, paid)
	require.Len(t, available, 1)
	assert.Equal(t, entity.StatusReturnedToCustomerCare, available[0].To)
}

func TestAvailableTransitions_Idempotent(t *testing.T) {
	eval := newTestEvaluator()
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
	device := &entity.Device{ID: uuid.New(), Status: entity.StatusDiagnosisStarted}
	snap := Snapshot{Parts: partsWithStatuses(entity.PartReceived)}

	first := eval.AvailableTransitions(device, admin, snap)
	second := eval.AvailableTransitions(device, admin, snap)
	assert.Equal(t, first, second)
}

func TestAuthorize(t *testing.T) {
	eval := newTestEvaluator()
	techID := uuid.New()
	device := &entity.Device{ID: uuid.New(), Status: entity.StatusInRepair, AssignedTo: &techID}
	tr, ok := eval.Registry().Find(entity.StatusInRepair, entity.StatusFailed)
	require.True(t, ok)

	assert.True(t, eval.Authorize(device, entity.Actor{ID: techID, Role: entity.RoleTechnician}, tr))
	assert.False(t, eval.Authorize(device, entity.Actor{ID: uuid.New(), Role: entity.RoleTechnician}, tr))
	assert.True(t, eval.Authorize(device, entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, tr))
	assert.False(t, eval.Authorize(device, entity.Actor{ID: uuid.New(), Role: entity.RoleCustomerCare}, tr))
}
