package generator

import (
	"fmt"
	"sync"
)

// State tracks itinerary acquisition for one destination view. Generation is
// atomic from the consumer's perspective: there is no partial or streaming
// state.
type State string

// Acquisition states. Ready and Failed are terminal for an attempt; a failed
// attempt may be retried, returning to Generating.
const (
	StateNoPlan     State = "no_plan"
	StateGenerating State = "generating"
	StateReady      State = "ready"
	StateFailed     State = "failed"
)

// Attempt is the acquisition state machine for a single destination view.
type Attempt struct {
	mu    sync.Mutex
	state State
}

// NewAttempt starts in the NoPlan state.
func NewAttempt() *Attempt {
	return &Attempt{state: StateNoPlan}
}

// State returns the current acquisition state.
func (a *Attempt) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Begin moves into Generating. Valid from NoPlan and, as a retry, from Failed.
func (a *Attempt) Begin() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateNoPlan && a.state != StateFailed {
		return fmt.Errorf("cannot begin generation from state %q", a.state)
	}
	a.state = StateGenerating
	return nil
}

// Succeed marks the attempt Ready after a validated response.
func (a *Attempt) Succeed() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateGenerating {
		return fmt.Errorf("cannot complete generation from state %q", a.state)
	}
	a.state = StateReady
	return nil
}

// Fail marks the attempt Failed; the caller may retry with Begin.
func (a *Attempt) Fail() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateGenerating {
		return fmt.Errorf("cannot fail generation from state %q", a.state)
	}
	a.state = StateFailed
	return nil
}
