package usecase

import (
	"context"

	"fixtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// PartSelection is one line of the parts-selection sub-flow result: a part
// the technician wants ordered for the repair.
type PartSelection struct {
	Name        string `json:"name"`
	PartRef     string `json:"part_ref"`
	Quantity    int    `json:"quantity"`
	CostPerUnit int64  `json:"cost_per_unit"`
	Notes       string `json:"notes,omitempty"`
}

// TransitionRequest carries everything the operator supplied when confirming
// a status change: notes, and the results of any sub-flow the client ran
// (parts selection, diagnostic checklist). A client that cancels a sub-flow
// simply never submits the request, so cancellation costs no writes.
type TransitionRequest struct {
	Notes             string          `json:"notes,omitempty"`
	Parts             []PartSelection `json:"parts,omitempty"`
	ChecklistComplete bool            `json:"checklist_complete,omitempty"`
}

// AvailableTransition is the evaluator's answer for one edge, shaped for the
// UI: enough to render a button and decide whether to prompt for notes.
type AvailableTransition struct {
	To            entity.DeviceStatus `json:"to"`
	Label         string              `json:"label"`
	Description   string              `json:"description"`
	RequiresNotes bool                `json:"requires_notes"`
	NeedsParts    bool                `json:"needs_parts"`     // Client must run the parts-selection sub-flow first.
	NeedsChecklist bool               `json:"needs_checklist"` // Client must run the diagnostic checklist first.
}

// RepairUsecase is the transition surface: evaluate what an actor may do to a
// device right now, and execute one validated transition.
type RepairUsecase interface {
	// AvailableTransitions computes, from freshly fetched state, the edges
	// the actor may take. Pure read; safe to poll.
	AvailableTransitions(ctx context.Context, deviceID uuid.UUID, actor entity.Actor) ([]AvailableTransition, error)

	// ExecuteTransition re-validates and applies one status change. Any
	// precondition or persistence failure leaves the device status unchanged;
	// the one exception - parts saved but status not - is reported with its
	// own error code.
	ExecuteTransition(ctx context.Context, deviceID uuid.UUID, to entity.DeviceStatus, actor entity.Actor, req *TransitionRequest) (*entity.Device, error)
}
