package transition

import (
	"fixtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// Evaluator filters the registry's edges down to what a given actor can do
// on a given device right now. It is a pure function of its inputs and safe
// to call repeatedly as snapshots refresh.
type Evaluator struct {
	registry *Registry
}

// NewEvaluator is the constructor for Evaluator.
func NewEvaluator(registry *Registry) *Evaluator {
	return &Evaluator{registry: registry}
}

// Registry exposes the underlying transition table.
func (e *Evaluator) Registry() *Registry {
	return e.registry
}

// AvailableTransitions returns, in registry declaration order, every edge the
// actor may take from the device's current status. An edge is kept iff its
// from-status matches, the actor's role is allowed, a technician actor is the
// assigned technician, and the precondition passes against the snapshot.
func (e *Evaluator) AvailableTransitions(device *entity.Device, actor entity.Actor, snap Snapshot) []StatusTransition {
	var out []StatusTransition
	for _, t := range e.registry.TransitionsFrom(device.Status) {
		if !t.AllowedRoles.Contains(actor.Role) {
			continue
		}
		if actor.Role == entity.RoleTechnician && !isAssignedTo(device, actor.ID) {
			continue
		}
		if res := t.Check(device, snap); !res.Valid {
			continue
		}
		out = append(out, t)
	}

	return out
}

// Authorize checks one requested edge for an actor without evaluating
// preconditions: role membership and technician assignment only.
func (e *Evaluator) Authorize(device *entity.Device, actor entity.Actor, t StatusTransition) bool {
	if !t.AllowedRoles.Contains(actor.Role) {
		return false
	}
	if actor.Role == entity.RoleTechnician && !isAssignedTo(device, actor.ID) {
		return false
	}

	return true
}

func isAssignedTo(device *entity.Device, staffID uuid.UUID) bool {
	return device.AssignedTo != nil && *device.AssignedTo == staffID
}
