package transition

import "fmt"

// SettlementResult explains whether a device may be handed back to the
// customer. When the customer is underpaid, Outstanding carries the delta the
// UI displays next to the reason.
type SettlementResult struct {
	Settled     bool
	Reason      string
	Outstanding int64
}

// CanHandover checks the payment settlement condition: no pending payments
// and, unless the repair was free, the completed payments cover the repair
// cost. Pending payments block handover regardless of cost. Amounts are in
// minor currency units.
func CanHandover(repairCost, totalPaid, totalPending int64) SettlementResult {
	if totalPending > 0 {
		return SettlementResult{
			Settled: false,
			Reason:  "There are pending payments that must be resolved before handover.",
		}
	}

	if repairCost > 0 && totalPaid < repairCost {
		outstanding := repairCost - totalPaid

		return SettlementResult{
			Settled:     false,
			Reason:      fmt.Sprintf("Customer still owes %d for this repair.", outstanding),
			Outstanding: outstanding,
		}
	}

	return SettlementResult{Settled: true}
}
