package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/hazartaspinar/upscanner/internal/event"
)

// ConsoleReporter prints human readable progress lines for the operator
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter returns a new instance of ConsoleReporter
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// Report implements event.Reporter
func (r *ConsoleReporter) Report(evt event.Event) {
	switch p := evt.Payload.(type) {
	case event.RunPayload:
		fmt.Fprintf(r.out, "[*] Loaded %d subnets.\n", p.Subnets)
		fmt.Fprintf(r.out, "[*] Discovery Mode: %s\n", p.Mode)
		fmt.Fprintf(r.out, "[*] Scan started... Results -> %s\n\n", p.Output)
	case event.SubnetPayload:
		if p.Addresses > 0 {
			fmt.Fprintf(r.out, "[*] Scanning Subnet [%d/%d]: %s (%d addresses)\n", p.Index, p.Count, p.Subnet, p.Addresses)
		} else {
			fmt.Fprintf(r.out, "[*] Scanning Subnet [%d/%d]: %s\n", p.Index, p.Count, p.Subnet)
		}
	case event.HostPayload:
		fmt.Fprintf(r.out, "[+] Found: %-15s (Total: %d)\n", p.IP, p.Total)
	case event.OutcomePayload:
		if evt.Type == event.SubnetFailed {
			fmt.Fprintf(r.out, "[!] Subnet %s failed after %d hosts: %s\n", p.Subnet, p.Found, p.Err)
		}
	case event.SummaryPayload:
		rule := strings.Repeat("=", 55)

		fmt.Fprintf(r.out, "\n%s\n", rule)
		fmt.Fprintf(r.out, "[✔] Comprehensive Scan Completed in %s!\n", p.Duration)
		fmt.Fprintf(r.out, "[*] Total Live Hosts Discovered: %d\n", p.Total)

		if p.Failed > 0 {
			fmt.Fprintf(r.out, "[!] Subnets Failed: %d\n", p.Failed)
		}

		fmt.Fprintf(r.out, "[*] Clean List Saved To: %s\n", p.Output)
		fmt.Fprintf(r.out, "%s\n", rule)
	}
}
