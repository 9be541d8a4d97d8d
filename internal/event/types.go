package event

import "time"

// EventType identifies the kind of progress event emitted during a run
type EventType string

const (
	RunStarted     EventType = "run-started"
	SubnetStarted  EventType = "subnet-started"
	HostFound      EventType = "host-found"
	SubnetFailed   EventType = "subnet-failed"
	SubnetFinished EventType = "subnet-finished"
	RunFinished    EventType = "run-finished"
)

// Event data structure representing any event we may want to react to
type Event struct {
	Type    EventType
	Payload any
}

// RunPayload accompanies RunStarted
type RunPayload struct {
	RunID   string
	Subnets int
	Mode    string
	Output  string
}

// SubnetPayload accompanies SubnetStarted
type SubnetPayload struct {
	Index     int
	Count     int
	Subnet    string
	Addresses uint64
}

// HostPayload accompanies HostFound
type HostPayload struct {
	Subnet string
	IP     string
	Total  int
}

// OutcomePayload accompanies SubnetFailed and SubnetFinished
type OutcomePayload struct {
	Subnet string
	Found  int
	Err    error
}

// SummaryPayload accompanies RunFinished
type SummaryPayload struct {
	RunID    string
	Duration time.Duration
	Total    int
	Failed   int
	Output   string
}
