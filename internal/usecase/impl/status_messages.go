package impl

import (
	"fmt"

	"fixtrack/internal/domain/entity"
)

// customerStatusMessage renders the SMS text sent to the customer after a
// status change. Statuses with no entry are internal steps the customer does
// not need to hear about, and return an empty string.
func customerStatusMessage(device *entity.Device) string {
	name := device.CustomerName
	if name == "" {
		name = "Customer"
	}
	label := device.Brand + " " + device.Model

	switch device.Status {
	case entity.StatusDiagnosisStarted:
		return fmt.Sprintf("Dear %s, diagnosis of your %s has started. We will update you once we know more.", name, label)
	case entity.StatusAwaitingParts:
		return fmt.Sprintf("Dear %s, your %s requires spare parts which have been ordered. We will notify you when repair resumes.", name, label)
	case entity.StatusInRepair:
		return fmt.Sprintf("Dear %s, repair of your %s is now in progress.", name, label)
	case entity.StatusRepairComplete:
		return fmt.Sprintf("Dear %s, good news! The repair of your %s is complete.", name, label)
	case entity.StatusReturnedToCustomerCare:
		return fmt.Sprintf("Dear %s, your %s is ready for pickup at our customer care desk.", name, label)
	case entity.StatusDone:
		return fmt.Sprintf("Dear %s, thank you for choosing us. Your %s service is now closed.", name, label)
	case entity.StatusFailed:
		return fmt.Sprintf("Dear %s, unfortunately your %s could not be repaired. Please contact customer care for options.", name, label)
	default:
		return ""
	}
}

// staffStatusMessage is the short push-notification body shown to the
// assigned technician.
func staffStatusMessage(status entity.DeviceStatus) string {
	switch status {
	case entity.StatusAssigned:
		return "A device has been assigned to you"
	case entity.StatusDiagnosisStarted:
		return "Diagnosis started"
	case entity.StatusAwaitingParts:
		return "Waiting for spare parts"
	case entity.StatusPartsArrived:
		return "Spare parts have arrived"
	case entity.StatusInRepair:
		return "Repair in progress"
	case entity.StatusReassembledTesting:
		return "Device reassembled, testing"
	case entity.StatusRepairComplete:
		return "Repair complete"
	case entity.StatusReturnedToCustomerCare:
		return "Returned to customer care"
	case entity.StatusDone:
		return "Service closed"
	case entity.StatusFailed:
		return "Repair marked as failed"
	default:
		return "Status updated"
	}
}
