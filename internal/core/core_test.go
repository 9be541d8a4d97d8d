package core_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hazartaspinar/upscanner/internal/core"
	"github.com/hazartaspinar/upscanner/internal/discovery"
	"github.com/hazartaspinar/upscanner/internal/event"
	"github.com/hazartaspinar/upscanner/internal/exception"
	"github.com/hazartaspinar/upscanner/internal/history"
	mock_discovery "github.com/hazartaspinar/upscanner/internal/mock/discovery"
	mock_history "github.com/hazartaspinar/upscanner/internal/mock/history"
	"github.com/hazartaspinar/upscanner/internal/subnet"
	"github.com/stretchr/testify/assert"
)

type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) Report(evt event.Event) {
	r.events = append(r.events, evt)
}

func (r *eventRecorder) types() []event.EventType {
	types := []event.EventType{}

	for _, e := range r.events {
		types = append(types, e.Type)
	}

	return types
}

// scanFinding mimics a discovery session that finds hosts
func scanFinding(hosts ...string) func(context.Context, subnet.Subnet, discovery.Sink, event.Reporter) discovery.Outcome {
	return func(
		ctx context.Context,
		s subnet.Subnet,
		sink discovery.Sink,
		reporter event.Reporter,
	) discovery.Outcome {
		out := discovery.Outcome{Subnet: s, State: discovery.StateCompleted, Hosts: []string{}}

		for _, h := range hosts {
			total, err := sink.Append(h)

			if err != nil {
				out.State = discovery.StateFailed
				out.Err = err
				return out
			}

			out.Found++
			out.Hosts = append(out.Hosts, h)

			reporter.Report(event.Event{
				Type:    event.HostFound,
				Payload: event.HostPayload{Subnet: s.Token, IP: h, Total: total},
			})
		}

		return out
	}
}

func scanFailing(s subnet.Subnet) discovery.Outcome {
	return discovery.Outcome{
		Subnet: s,
		State:  discovery.StateFailed,
		Hosts:  []string{},
		Err:    fmt.Errorf("%w: %s: exec format error", exception.ErrSubnetScanFailure, s.Token),
	}
}

func writeInput(t *testing.T, dir, content string) string {
	path := filepath.Join(dir, "subnets.txt")

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Logf("failed to write input file: %s", err.Error())
		t.FailNow()
	}

	return path
}

func lines(t *testing.T, path string) []string {
	data, err := os.ReadFile(path)

	if err != nil {
		t.Logf("failed to read output file: %s", err.Error())
		t.FailNow()
	}

	trimmed := strings.TrimSuffix(string(data), "\n")

	if trimmed == "" {
		return []string{}
	}

	return strings.Split(trimmed, "\n")
}

func TestCore(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	t.Run("aborts before reading input when nmap is missing", func(st *testing.T) {
		mockScanner := mock_discovery.NewMockScanner(ctrl)
		dir := st.TempDir()
		input := filepath.Join(dir, "missing.txt")
		output := filepath.Join(dir, "live.txt")

		mockScanner.EXPECT().Prepare().Return(
			fmt.Errorf("%w: %s", exception.ErrDependencyMissing, discovery.InstallHint),
		)

		c := core.New(mockScanner, nil, event.Discard)

		state, err := c.Run(context.Background(), input, output)

		assert.Nil(st, state)
		assert.True(st, errors.Is(err, exception.ErrDependencyMissing))
		assert.False(st, errors.Is(err, exception.ErrInputNotFound))

		_, statErr := os.Stat(output)

		assert.True(st, errors.Is(statErr, os.ErrNotExist))
	})

	t.Run("aborts before touching output when input is missing", func(st *testing.T) {
		mockScanner := mock_discovery.NewMockScanner(ctrl)
		dir := st.TempDir()
		input := filepath.Join(dir, "missing.txt")
		output := filepath.Join(dir, "live.txt")

		assert.NoError(st, os.WriteFile(output, []byte("10.9.9.9\n"), 0644))

		mockScanner.EXPECT().Prepare().Return(nil)

		c := core.New(mockScanner, nil, event.Discard)

		state, err := c.Run(context.Background(), input, output)

		assert.Nil(st, state)
		assert.True(st, errors.Is(err, exception.ErrInputNotFound))
		// previous results are left alone
		assert.Equal(st, []string{"10.9.9.9"}, lines(st, output))
	})

	t.Run("continues past a failed subnet", func(st *testing.T) {
		mockScanner := mock_discovery.NewMockScanner(ctrl)
		reporter := &eventRecorder{}
		dir := st.TempDir()
		input := writeInput(st, dir, "10.0.0.0/30\n# skip me\n\n10.0.1.0/30\n10.0.2.0/30\n")
		output := filepath.Join(dir, "live.txt")

		assert.NoError(st, os.WriteFile(output, []byte("stale\n"), 0644))

		mockScanner.EXPECT().Prepare().Return(nil)

		gomock.InOrder(
			mockScanner.EXPECT().
				Scan(gomock.Any(), subnet.Subnet{Index: 1, Token: "10.0.0.0/30", Addresses: 4}, gomock.Any(), reporter).
				DoAndReturn(scanFinding("10.0.0.2", "10.0.0.3")),
			mockScanner.EXPECT().
				Scan(gomock.Any(), subnet.Subnet{Index: 2, Token: "10.0.1.0/30", Addresses: 4}, gomock.Any(), reporter).
				DoAndReturn(func(ctx context.Context, s subnet.Subnet, sink discovery.Sink, r event.Reporter) discovery.Outcome {
					return scanFailing(s)
				}),
			mockScanner.EXPECT().
				Scan(gomock.Any(), subnet.Subnet{Index: 3, Token: "10.0.2.0/30", Addresses: 4}, gomock.Any(), reporter).
				DoAndReturn(scanFinding("10.0.2.1")),
		)

		c := core.New(mockScanner, nil, reporter)

		state, err := c.Run(context.Background(), input, output)

		assert.NoError(st, err)
		assert.Equal(st, 3, len(state.Outcomes))
		assert.Equal(st, 3, state.Total)
		assert.Equal(st, 1, state.Failed)
		assert.False(st, state.Finished.IsZero())
		assert.Equal(st, []string{"10.0.0.2", "10.0.0.3", "10.0.2.1"}, lines(st, output))
		assert.Equal(st, state.Total, len(lines(st, output)))

		assert.Equal(st, []event.EventType{
			event.RunStarted,
			event.SubnetStarted,
			event.HostFound,
			event.HostFound,
			event.SubnetFinished,
			event.SubnetStarted,
			event.SubnetFailed,
			event.SubnetFinished,
			event.SubnetStarted,
			event.HostFound,
			event.SubnetFinished,
			event.RunFinished,
		}, reporter.types())

		summary, ok := reporter.events[len(reporter.events)-1].Payload.(event.SummaryPayload)

		assert.True(st, ok)
		assert.Equal(st, 3, summary.Total)
		assert.Equal(st, 1, summary.Failed)
		assert.Equal(st, output, summary.Output)
	})

	t.Run("keeps duplicate hosts across subnets", func(st *testing.T) {
		mockScanner := mock_discovery.NewMockScanner(ctrl)
		dir := st.TempDir()
		input := writeInput(st, dir, "10.0.0.0/24\n10.0.0.0/25\n")
		output := filepath.Join(dir, "live.txt")

		mockScanner.EXPECT().Prepare().Return(nil)
		mockScanner.EXPECT().
			Scan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(scanFinding("10.0.0.1")).
			Times(2)

		c := core.New(mockScanner, nil, event.Discard)

		state, err := c.Run(context.Background(), input, output)

		assert.NoError(st, err)
		assert.Equal(st, 2, state.Total)
		assert.Equal(st, []string{"10.0.0.1", "10.0.0.1"}, lines(st, output))
	})

	t.Run("records run history", func(st *testing.T) {
		mockScanner := mock_discovery.NewMockScanner(ctrl)
		mockHistory := mock_history.NewMockService(ctrl)
		dir := st.TempDir()
		input := writeInput(st, dir, "10.0.0.0/30\n10.0.1.0/30\n")
		output := filepath.Join(dir, "live.txt")
		run := &history.Run{ID: "recorded"}
		recorded := []*history.SubnetResult{}

		mockScanner.EXPECT().Prepare().Return(nil)
		mockScanner.EXPECT().
			Scan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(scanFinding("10.0.0.2"))
		mockScanner.EXPECT().
			Scan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, s subnet.Subnet, sink discovery.Sink, r event.Reporter) discovery.Outcome {
				return scanFailing(s)
			})

		mockHistory.EXPECT().
			StartRun(gomock.Any(), input, output, 2, gomock.Any()).
			Return(run, nil)
		mockHistory.EXPECT().
			RecordSubnet("recorded", gomock.Any()).
			DoAndReturn(func(id string, res *history.SubnetResult) error {
				recorded = append(recorded, res)
				return nil
			}).
			Times(2)
		mockHistory.EXPECT().
			FinishRun(run, gomock.Any()).
			Return(nil)

		c := core.New(mockScanner, mockHistory, event.Discard)

		state, err := c.Run(context.Background(), input, output)

		assert.NoError(st, err)
		assert.Equal(st, 1, run.Total)
		assert.Equal(st, 1, run.Failed)
		assert.Equal(st, 2, len(recorded))
		assert.Equal(st, "10.0.0.0/30", recorded[0].Subnet)
		assert.Equal(st, string(discovery.StateCompleted), recorded[0].State)
		assert.Equal(st, 1, recorded[0].Found)
		assert.Equal(st, "10.0.1.0/30", recorded[1].Subnet)
		assert.Equal(st, string(discovery.StateFailed), recorded[1].State)
		assert.NotEmpty(st, recorded[1].Error)
		assert.Equal(st, 1, state.Total)
	})

	t.Run("scans even when history cannot be recorded", func(st *testing.T) {
		mockScanner := mock_discovery.NewMockScanner(ctrl)
		mockHistory := mock_history.NewMockService(ctrl)
		dir := st.TempDir()
		input := writeInput(st, dir, "10.0.0.0/30\n")
		output := filepath.Join(dir, "live.txt")

		mockScanner.EXPECT().Prepare().Return(nil)
		mockScanner.EXPECT().
			Scan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(scanFinding("10.0.0.2"))
		mockHistory.EXPECT().
			StartRun(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database is locked"))

		c := core.New(mockScanner, mockHistory, event.Discard)

		state, err := c.Run(context.Background(), input, output)

		assert.NoError(st, err)
		assert.Equal(st, 1, state.Total)
	})

	t.Run("stops scanning when context is cancelled", func(st *testing.T) {
		mockScanner := mock_discovery.NewMockScanner(ctrl)
		dir := st.TempDir()
		input := writeInput(st, dir, "10.0.0.0/30\n10.0.1.0/30\n")
		output := filepath.Join(dir, "live.txt")

		ctx, cancel := context.WithCancel(context.Background())

		mockScanner.EXPECT().Prepare().Return(nil)
		mockScanner.EXPECT().
			Scan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, s subnet.Subnet, sink discovery.Sink, r event.Reporter) discovery.Outcome {
				out := scanFinding("10.0.0.2")(ctx, s, sink, r)
				cancel()
				return out
			})

		c := core.New(mockScanner, nil, event.Discard)

		state, err := c.Run(ctx, input, output)

		assert.Error(st, err)
		assert.True(st, errors.Is(err, context.Canceled))
		assert.Equal(st, 1, len(state.Outcomes))
		assert.Equal(st, []string{"10.0.0.2"}, lines(st, output))
	})
}

func TestConsoleReporter(t *testing.T) {
	t.Run("prints progress lines", func(st *testing.T) {
		buf := &bytes.Buffer{}
		reporter := core.NewConsoleReporter(buf)

		reporter.Report(event.Event{
			Type:    event.RunStarted,
			Payload: event.RunPayload{Subnets: 3, Mode: discovery.Mode, Output: "live.txt"},
		})
		reporter.Report(event.Event{
			Type:    event.SubnetStarted,
			Payload: event.SubnetPayload{Index: 1, Count: 3, Subnet: "10.0.0.0/30", Addresses: 4},
		})
		reporter.Report(event.Event{
			Type:    event.HostFound,
			Payload: event.HostPayload{Subnet: "10.0.0.0/30", IP: "10.0.0.2", Total: 1},
		})
		reporter.Report(event.Event{
			Type:    event.SubnetFailed,
			Payload: event.OutcomePayload{Subnet: "10.0.1.0/30", Err: errors.New("boom")},
		})
		reporter.Report(event.Event{
			Type:    event.SubnetFinished,
			Payload: event.OutcomePayload{Subnet: "10.0.1.0/30"},
		})
		reporter.Report(event.Event{
			Type:    event.RunFinished,
			Payload: event.SummaryPayload{Total: 1, Failed: 1, Output: "live.txt"},
		})

		out := buf.String()

		assert.Contains(st, out, "[*] Loaded 3 subnets.")
		assert.Contains(st, out, discovery.Mode)
		assert.Contains(st, out, "[*] Scanning Subnet [1/3]: 10.0.0.0/30 (4 addresses)")
		assert.Contains(st, out, "[+] Found: 10.0.0.2")
		assert.Contains(st, out, "(Total: 1)")
		assert.Contains(st, out, "[!] Subnet 10.0.1.0/30 failed")
		assert.Contains(st, out, "[*] Total Live Hosts Discovered: 1")
		assert.Contains(st, out, "[*] Clean List Saved To: live.txt")
		assert.Equal(st, 1, strings.Count(out, "10.0.1.0/30"))
	})
}
