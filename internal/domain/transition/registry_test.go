package transition

import (
	"testing"

	"fixtrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_EdgeSet(t *testing.T) {
	reg := NewRegistry()

	type edge struct {
		from, to entity.DeviceStatus
	}
	want := []edge{
		{entity.StatusAssigned, entity.StatusDiagnosisStarted},
		{entity.StatusDiagnosisStarted, entity.StatusAwaitingParts},
		{entity.StatusDiagnosisStarted, entity.StatusInRepair},
		{entity.StatusAwaitingParts, entity.StatusPartsArrived},
		{entity.StatusAwaitingParts, entity.StatusInRepair},
		{entity.StatusPartsArrived, entity.StatusInRepair},
		{entity.StatusInRepair, entity.StatusReassembledTesting},
		{entity.StatusInRepair, entity.StatusFailed},
		{entity.StatusReassembledTesting, entity.StatusRepairComplete},
		{entity.StatusReassembledTesting, entity.StatusInRepair},
		{entity.StatusRepairComplete, entity.StatusReturnedToCustomerCare},
		{entity.StatusReturnedToCustomerCare, entity.StatusDone},
		{entity.StatusFailed, entity.StatusReturnedToCustomerCare},
		{entity.StatusFailed, entity.StatusDone},
	}

	all := reg.All()
	require.Len(t, all, len(want))
	for i, e := range want {
		assert.Equal(t, e.from, all[i].From, "edge %d from", i)
		assert.Equal(t, e.to, all[i].To, "edge %d to", i)
	}
}

func TestNewRegistry_NotesRequiredFlags(t *testing.T) {
	reg := NewRegistry()

	notesRequired := map[[2]entity.DeviceStatus]bool{
		{entity.StatusDiagnosisStarted, entity.StatusAwaitingParts}:      true,
		{entity.StatusInRepair, entity.StatusReassembledTesting}:         true,
		{entity.StatusInRepair, entity.StatusFailed}:                     true,
		{entity.StatusReassembledTesting, entity.StatusRepairComplete}:   true,
		{entity.StatusReassembledTesting, entity.StatusInRepair}:         true,
		{entity.StatusFailed, entity.StatusReturnedToCustomerCare}:       true,
		{entity.StatusFailed, entity.StatusDone}:                         true,
		{entity.StatusAssigned, entity.StatusDiagnosisStarted}:           false,
		{entity.StatusAwaitingParts, entity.StatusPartsArrived}:          false,
		{entity.StatusRepairComplete, entity.StatusReturnedToCustomerCare}: false,
		{entity.StatusReturnedToCustomerCare, entity.StatusDone}:         false,
	}

	for pair, want := range notesRequired {
		tr, ok := reg.Find(pair[0], pair[1])
		require.True(t, ok, "edge %s -> %s must exist", pair[0], pair[1])
		assert.Equal(t, want, tr.RequiresNotes, "edge %s -> %s notes flag", pair[0], pair[1])
	}
}

func TestNewRegistry_RoleSets(t *testing.T) {
	reg := NewRegistry()

	receive, ok := reg.Find(entity.StatusAwaitingParts, entity.StatusPartsArrived)
	require.True(t, ok)
	assert.True(t, receive.AllowedRoles.Contains(entity.RoleCustomerCare))
	assert.True(t, receive.AllowedRoles.Contains(entity.RoleTechnician))

	done, ok := reg.Find(entity.StatusReturnedToCustomerCare, entity.StatusDone)
	require.True(t, ok)
	assert.False(t, done.AllowedRoles.Contains(entity.RoleTechnician))
	assert.True(t, done.AllowedRoles.Contains(entity.RoleAdmin))
	assert.True(t, done.AllowedRoles.Contains(entity.RoleCustomerCare))

	failDone, ok := reg.Find(entity.StatusFailed, entity.StatusDone)
	require.True(t, ok)
	assert.False(t, failDone.AllowedRoles.Contains(entity.RoleTechnician))
}

func TestRegistry_Find_UnknownEdge(t *testing.T) {
	reg := NewRegistry()

	_, ok := reg.Find(entity.StatusAssigned, entity.StatusDone)
	assert.False(t, ok)

	_, ok = reg.Find(entity.StatusDone, entity.StatusAssigned)
	assert.False(t, ok)
}

func TestRegistry_PartsArrivedPrecondition(t *testing.T) {
	reg := NewRegistry()
	tr, ok := reg.Find(entity.StatusAwaitingParts, entity.StatusPartsArrived)
	require.True(t, ok)

	device := &entity.Device{Status: entity.StatusAwaitingParts}

	res := tr.Check(device, Snapshot{})
	assert.False(t, res.Valid, "no requested parts means nothing to receive")

	res = tr.Check(device, Snapshot{Parts: partsWithStatuses(entity.PartReceived, entity.PartOrdered)})
	assert.False(t, res.Valid)
	assert.Contains(t, res.Reason, "not arrived")

	res = tr.Check(device, Snapshot{Parts: partsWithStatuses(entity.PartReceived, entity.PartUsed)})
	assert.True(t, res.Valid)
}

func TestRegistry_SettlementPrecondition(t *testing.T) {
	reg := NewRegistry()
	tr, ok := reg.Find(entity.StatusRepairComplete, entity.StatusReturnedToCustomerCare)
	require.True(t, ok)

	device := &entity.Device{Status: entity.StatusRepairComplete, RepairCost: 20000}

	res := tr.Check(device, Snapshot{Payments: entity.PaymentAggregate{TotalPaid: 20000}})
	assert.True(t, res.Valid)

	res = tr.Check(device, Snapshot{Payments: entity.PaymentAggregate{TotalPaid: 5000}})
	assert.False(t, res.Valid)
	assert.Contains(t, res.Reason, "owes")

	res = tr.Check(device, Snapshot{Payments: entity.PaymentAggregate{TotalPaid: 20000, TotalPending: 100}})
	assert.False(t, res.Valid)
}

func TestRegistry_TransitionsFrom_TerminalStatus(t *testing.T) {
	reg := NewRegistry()
	assert.Empty(t, reg.TransitionsFrom(entity.StatusDone))
}
