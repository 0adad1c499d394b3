package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanHandover_FullyPaid(t *testing.T) {
	res := CanHandover(50000, 50000, 0)
	assert.True(t, res.Settled)
	assert.Empty(t, res.Reason)
	assert.Zero(t, res.Outstanding)
}

func TestCanHandover_Underpaid(t *testing.T) {
	res := CanHandover(50000, 30000, 0)
	assert.False(t, res.Settled)
	assert.Equal(t, int64(20000), res.Outstanding)
	assert.Contains(t, res.Reason, "20000")
}

func TestCanHandover_PendingBlocksRegardlessOfCost(t *testing.T) {
	res := CanHandover(0, 0, 1)
	assert.False(t, res.Settled)
	assert.Contains(t, res.Reason, "pending")
	assert.Zero(t, res.Outstanding)
}

func TestCanHandover_FreeRepair(t *testing.T) {
	res := CanHandover(0, 0, 0)
	assert.True(t, res.Settled)
}

func TestCanHandover_Overpaid(t *testing.T) {
	res := CanHandover(20000, 25000, 0)
	assert.True(t, res.Settled)
}
