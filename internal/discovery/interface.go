package discovery

import (
	"context"
	"io"

	"github.com/hazartaspinar/upscanner/internal/event"
	"github.com/hazartaspinar/upscanner/internal/subnet"
)

//go:generate mockgen -destination=../mock/discovery/mock_discovery.go -package=mock_discovery . Collaborator,Process,Sink,Scanner

// Process a running discovery collaborator
type Process interface {
	Stdout() io.Reader
	Wait() error
}

// Collaborator starts external discovery processes
type Collaborator interface {
	Start(ctx context.Context, binary string, args []string) (Process, error)
}

// Sink persists discovered addresses and returns the new running total
type Sink interface {
	Append(addr string) (int, error)
}

// Scanner interface for discovering live hosts one subnet at a time
type Scanner interface {
	Prepare() error
	Scan(
		ctx context.Context,
		target subnet.Subnet,
		sink Sink,
		reporter event.Reporter,
	) Outcome
}
