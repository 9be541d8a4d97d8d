package discovery

import (
	"fmt"

	"github.com/hazartaspinar/upscanner/internal/exception"
	"github.com/hazartaspinar/upscanner/internal/subnet"
)

// State represents where a subnet's discovery session is in its lifecycle
type State string

const (
	StateNotStarted State = "not-started"
	StateRunning    State = "running"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

// Outcome is the tagged result of scanning a single subnet. Found and Hosts
// are populated even on failure since records written before the failure
// stay in the result store.
type Outcome struct {
	Subnet subnet.Subnet
	State  State
	Found  int
	Hosts  []string
	Err    error
}

// OK returns true if the session completed
func (o Outcome) OK() bool {
	return o.State == StateCompleted
}

func (o Outcome) fail(err error) Outcome {
	o.State = StateFailed
	o.Err = fmt.Errorf("%w: %s: %w", exception.ErrSubnetScanFailure, o.Subnet.Token, err)
	return o
}
