package core

import (
	"context"
	"fmt"
	"time"

	"github.com/hazartaspinar/upscanner/internal/discovery"
	"github.com/hazartaspinar/upscanner/internal/event"
	"github.com/hazartaspinar/upscanner/internal/history"
	"github.com/hazartaspinar/upscanner/internal/logger"
	"github.com/hazartaspinar/upscanner/internal/store"
	"github.com/hazartaspinar/upscanner/internal/subnet"
	"github.com/rs/xid"
)

// Core represents our core data structure
type Core struct {
	scanner  discovery.Scanner
	history  history.Service
	reporter event.Reporter
	log      logger.Logger
}

// New returns new core module. historyService may be nil to skip
// recording runs.
func New(
	scanner discovery.Scanner,
	historyService history.Service,
	reporter event.Reporter,
) *Core {
	return &Core{
		scanner:  scanner,
		history:  historyService,
		reporter: reporter,
		log:      logger.Component("core"),
	}
}

// Run scans every subnet listed in input one after another, appending live
// hosts to output. Only a missing nmap binary, a missing input file or an
// unwritable output file abort the run; failed subnets are reported and
// skipped.
func (c *Core) Run(ctx context.Context, input, output string) (*RunState, error) {
	if err := c.scanner.Prepare(); err != nil {
		return nil, err
	}

	subnets, err := subnet.Load(input)

	if err != nil {
		return nil, err
	}

	results, err := store.Create(output)

	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	state := &RunState{
		ID:       xid.New().String(),
		Input:    input,
		Output:   output,
		Started:  time.Now(),
		Subnets:  subnets,
		Outcomes: []discovery.Outcome{},
	}

	c.log.Info().
		Str("run", state.ID).
		Int("subnets", len(subnets)).
		Str("output", output).
		Msg("starting discovery run")

	c.reporter.Report(event.Event{
		Type: event.RunStarted,
		Payload: event.RunPayload{
			RunID:   state.ID,
			Subnets: len(subnets),
			Mode:    discovery.Mode,
			Output:  output,
		},
	})

	record := c.startHistory(state)

	for _, s := range subnets {
		if ctx.Err() != nil {
			break
		}

		c.reporter.Report(event.Event{
			Type: event.SubnetStarted,
			Payload: event.SubnetPayload{
				Index:     s.Index,
				Count:     len(subnets),
				Subnet:    s.Token,
				Addresses: s.Addresses,
			},
		})

		outcome := c.scanner.Scan(ctx, s, results, c.reporter)

		state.Fold(outcome)

		c.handleOutcome(outcome)

		if record != nil {
			c.recordSubnet(record, outcome)
		}
	}

	state.Finished = time.Now()

	if record != nil {
		c.finishHistory(record, state)
	}

	c.log.Info().
		Str("run", state.ID).
		Int("total", state.Total).
		Int("failed", state.Failed).
		Dur("duration", state.Duration()).
		Msg("discovery run finished")

	c.reporter.Report(event.Event{
		Type: event.RunFinished,
		Payload: event.SummaryPayload{
			RunID:    state.ID,
			Duration: state.Duration(),
			Total:    state.Total,
			Failed:   state.Failed,
			Output:   output,
		},
	})

	if err := ctx.Err(); err != nil {
		return state, fmt.Errorf("discovery run interrupted: %w", err)
	}

	return state, nil
}

func (c *Core) handleOutcome(outcome discovery.Outcome) {
	payload := event.OutcomePayload{
		Subnet: outcome.Subnet.Token,
		Found:  outcome.Found,
		Err:    outcome.Err,
	}

	if !outcome.OK() {
		c.log.Warn().
			Err(outcome.Err).
			Str("subnet", outcome.Subnet.Token).
			Int("found", outcome.Found).
			Msg("subnet scan failed")

		c.reporter.Report(event.Event{Type: event.SubnetFailed, Payload: payload})
	}

	c.reporter.Report(event.Event{Type: event.SubnetFinished, Payload: payload})
}

// history failures are logged and never interrupt scanning

func (c *Core) startHistory(state *RunState) *history.Run {
	if c.history == nil {
		return nil
	}

	run, err := c.history.StartRun(
		state.ID,
		state.Input,
		state.Output,
		len(state.Subnets),
		state.Started,
	)

	if err != nil {
		c.log.Warn().Err(err).Msg("failed to record run, history disabled for this run")
		return nil
	}

	return run
}

func (c *Core) recordSubnet(run *history.Run, outcome discovery.Outcome) {
	result, err := history.NewSubnetResult(
		outcome.Subnet.Index,
		outcome.Subnet.Token,
		string(outcome.State),
		outcome.Hosts,
		outcome.Err,
	)

	if err == nil {
		err = c.history.RecordSubnet(run.ID, result)
	}

	if err != nil {
		c.log.Warn().Err(err).Str("subnet", outcome.Subnet.Token).Msg("failed to record subnet result")
	}
}

func (c *Core) finishHistory(run *history.Run, state *RunState) {
	run.Total = state.Total
	run.Failed = state.Failed

	if err := c.history.FinishRun(run, state.Finished); err != nil {
		c.log.Warn().Err(err).Str("run", run.ID).Msg("failed to record run totals")
	}
}
