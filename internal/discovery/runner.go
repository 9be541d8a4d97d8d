package discovery

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hazartaspinar/upscanner/internal/event"
	"github.com/hazartaspinar/upscanner/internal/logger"
	"github.com/hazartaspinar/upscanner/internal/subnet"
)

// Runner is an implementation of the Scanner interface driving nmap
type Runner struct {
	binaryPath   string
	binary       string
	probe        ProbeConfig
	collaborator Collaborator
	timeout      time.Duration
	log          logger.Logger
}

// RunnerOption configures optional Runner settings
type RunnerOption func(r *Runner)

// WithTimeout bounds every subnet session to d. Zero means no bound.
func WithTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithProbeConfig replaces the default probe configuration
func WithProbeConfig(probe ProbeConfig) RunnerOption {
	return func(r *Runner) {
		r.probe = probe
	}
}

// NewRunner returns a new instance of Runner. binaryPath may be empty to
// use nmap from $PATH.
func NewRunner(binaryPath string, collaborator Collaborator, options ...RunnerOption) *Runner {
	r := &Runner{
		binaryPath:   binaryPath,
		probe:        DefaultProbeConfig(),
		collaborator: collaborator,
		log:          logger.Component("discovery"),
	}

	for _, o := range options {
		o(r)
	}

	return r
}

// Prepare verifies nmap is available. It must succeed before Scan is called.
func (r *Runner) Prepare() error {
	binary, err := CheckDependency(r.binaryPath)

	if err != nil {
		return err
	}

	r.log.Debug().Str("binary", binary).Msg("found nmap")

	r.binary = binary

	return nil
}

// Scan runs a single discovery session against target. Every address
// reported up is appended to sink and announced on reporter as soon as nmap
// prints it. Failures never escape, they are returned in the Outcome.
func (r *Runner) Scan(
	ctx context.Context,
	target subnet.Subnet,
	sink Sink,
	reporter event.Reporter,
) Outcome {
	out := Outcome{
		Subnet: target,
		State:  StateNotStarted,
		Hosts:  []string{},
	}

	if r.binary == "" {
		return out.fail(errors.New("runner is not prepared"))
	}

	if r.timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, r.timeout)
		defer cancelTimeout()
	}

	// cancel kills the child if we have to stop reading early
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	args, err := r.probe.Args(ctx, r.binary, target.Token)

	if err != nil {
		return out.fail(fmt.Errorf("failed to build nmap arguments: %w", err))
	}

	r.log.Debug().Strs("args", args).Msg("starting nmap")

	proc, err := r.collaborator.Start(ctx, r.binary, args)

	if err != nil {
		return out.fail(fmt.Errorf("failed to start nmap: %w", err))
	}

	out.State = StateRunning

	lines := bufio.NewScanner(proc.Stdout())

	for lines.Scan() {
		ip, ok := ParseHostLine(lines.Text())

		if !ok {
			continue
		}

		total, err := sink.Append(ip)

		if err != nil {
			cancel()

			if waitErr := proc.Wait(); waitErr != nil {
				r.log.Debug().Err(waitErr).Str("subnet", target.Token).Msg("nmap stopped after record failure")
			}

			return out.fail(fmt.Errorf("failed to record %s: %w", ip, err))
		}

		out.Found++
		out.Hosts = append(out.Hosts, ip)

		r.log.Debug().Str("ip", ip).Int("total", total).Msg("host is up")

		reporter.Report(event.Event{
			Type: event.HostFound,
			Payload: event.HostPayload{
				Subnet: target.Token,
				IP:     ip,
				Total:  total,
			},
		})
	}

	readErr := lines.Err()

	if readErr != nil {
		cancel()
	}

	waitErr := proc.Wait()

	switch {
	case readErr != nil:
		return out.fail(fmt.Errorf("failed to read nmap output: %w", readErr))
	case ctx.Err() != nil:
		return out.fail(fmt.Errorf("nmap interrupted: %w", ctx.Err()))
	case waitErr != nil:
		return out.fail(fmt.Errorf("nmap exited with error: %w", waitErr))
	}

	out.State = StateCompleted

	return out
}
