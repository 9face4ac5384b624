package dice

import (
	"crypto/rand"
	"math/big"
)

var mockRollQueue []int

// MockRolls prepares a sequence of deterministic face values for the next
// calls to Roll. Each queued value is consumed as the raw face of one die,
// before any modifier is applied.
func MockRolls(faces []int) {
	mockRollQueue = faces
}

// ResetMockRolls clears the deterministic queue.
func ResetMockRolls() {
	mockRollQueue = nil
}

// safeRand fetches a strongly uniform random integer in 1..max via crypto/rand
func safeRand(max int) int {
	if max <= 0 {
		return 0
	}
	if len(mockRollQueue) > 0 {
		val := mockRollQueue[0]
		mockRollQueue = mockRollQueue[1:]
		return val
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64()) + 1 // Convert 0-(Max-1) to 1-Max
}
