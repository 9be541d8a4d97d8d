package core

import (
	"time"

	"github.com/hazartaspinar/upscanner/internal/discovery"
	"github.com/hazartaspinar/upscanner/internal/subnet"
)

// RunState accumulates the outcome of every subnet scanned in a run
type RunState struct {
	ID       string
	Input    string
	Output   string
	Started  time.Time
	Finished time.Time
	Subnets  []subnet.Subnet
	Outcomes []discovery.Outcome
	Total    int
	Failed   int
}

// Fold adds a subnet outcome to the run totals. Hosts recorded by a
// failed session still count since they are in the result file.
func (s *RunState) Fold(outcome discovery.Outcome) {
	s.Outcomes = append(s.Outcomes, outcome)
	s.Total += outcome.Found

	if !outcome.OK() {
		s.Failed++
	}
}

// Duration returns the wall clock time of the run
func (s *RunState) Duration() time.Duration {
	if s.Finished.IsZero() {
		return time.Since(s.Started)
	}

	return s.Finished.Sub(s.Started)
}
