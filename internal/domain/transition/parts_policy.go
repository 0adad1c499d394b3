package transition

import (
	"fmt"

	"fixtrack/internal/domain/entity"
)

// HasPendingParts reports whether any requested part has not yet arrived.
func HasPendingParts(parts []*entity.RepairPart) bool {
	for _, p := range parts {
		if p.Status.IsPending() {
			return true
		}
	}

	return false
}

// AllPartsReady reports whether parts were requested and every one of them
// has reached received or used. An empty list is not "ready": there is
// nothing to receive.
func AllPartsReady(parts []*entity.RepairPart) bool {
	return len(parts) > 0 && !HasPendingParts(parts)
}

// CanStartRepair decides whether repair work may begin given the requested
// parts. A device that never needed parts is never blocked. Once parts have
// been requested, every one must have arrived and at least one must be on
// hand. The reason string is suitable for direct display.
func CanStartRepair(parts []*entity.RepairPart) (bool, string) {
	if len(parts) == 0 {
		return true, ""
	}

	pending := 0
	received := 0
	for _, p := range parts {
		switch {
		case p.Status.IsPending():
			pending++
		case p.Status == entity.PartReceived || p.Status == entity.PartUsed:
			received++
		}
	}

	if pending > 0 {
		return false, fmt.Sprintf("Cannot start repair: %d spare parts are still pending. Mark them as received first.", pending)
	}
	if received == 0 {
		return false, "No spare parts have been received yet. Mark parts as received before starting repair."
	}

	return true, ""
}
