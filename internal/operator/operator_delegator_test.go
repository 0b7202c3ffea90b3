package operator

import (
	"testing"
	"time"

	"github.com/flowi-app/flowi-server/internal/storage"
)

func TestOperatorDelegator_StopDrainsWorkers(t *testing.T) {
	delegator := NewOperatorDelegator(&storage.Storage{}, 2)
	delegator.Start()

	done := make(chan struct{})
	go func() {
		delegator.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after workers drained")
	}

	// A second Stop must be a no-op rather than a double close.
	delegator.Stop()
}
