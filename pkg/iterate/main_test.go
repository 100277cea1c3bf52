package iterate

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain enables goroutine leak detection for all tests in this package.
// Ephemeral iteration pools must never leak their workers.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
