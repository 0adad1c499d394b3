// Package transition models the device repair lifecycle: the table of legal
// status edges, the role and precondition checks that gate them, and the
// evaluator that computes which edges an actor can take right now. Everything
// here is pure; persistence and notification side effects live in the use
// case layer.
package transition

import (
	"fixtrack/internal/domain/entity"
)

// Snapshot carries the freshly fetched aggregates a precondition may consult.
// Callers must rebuild it from the persistence layer immediately before the
// final validation gate; stale client-side copies are expected upstream and
// must not be trusted.
type Snapshot struct {
	Parts    []*entity.RepairPart
	Payments entity.PaymentAggregate
}

// Result is the outcome of one precondition check. Reason is a
// human-readable explanation set only when the check fails.
type Result struct {
	Valid  bool
	Reason string
}

// Valid returns a passing Result.
func valid() Result {
	return Result{Valid: true}
}

// invalid returns a failing Result with the given display reason.
func invalid(reason string) Result {
	return Result{Valid: false, Reason: reason}
}

// Precondition is a pure predicate gating whether an edge is currently legal.
type Precondition func(device *entity.Device, snap Snapshot) Result

// StatusTransition is one permitted edge between two device statuses.
type StatusTransition struct {
	From          entity.DeviceStatus
	To            entity.DeviceStatus
	Label         string // Button caption shown to the operator.
	Description   string
	RequiresNotes bool         // Operator notes are mandatory for this edge.
	AllowedRoles  entity.Roles // Roles permitted to take this edge.
	Validate      Precondition // nil means the edge is unconditional.
}

// Check runs the edge's precondition against the device and snapshot.
// Unconditional edges always pass.
func (t StatusTransition) Check(device *entity.Device, snap Snapshot) Result {
	if t.Validate == nil {
		return valid()
	}

	return t.Validate(device, snap)
}
