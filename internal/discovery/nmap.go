package discovery

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/Ullaakut/nmap/v3"
	"github.com/hazartaspinar/upscanner/internal/exception"
)

// DefaultBinary name of the nmap executable looked up on $PATH
const DefaultBinary = "nmap"

// InstallHint is reported alongside ErrDependencyMissing
const InstallHint = "please install: sudo apt install nmap"

// Mode is a human readable summary of the probe strategy
const Mode = "Paranoid (ICMP + TCP SYN/ACK + UDP)"

// ProbeConfig host discovery settings handed to nmap for every subnet
type ProbeConfig struct {
	SYNPorts   []string
	ACKPorts   []string
	UDPPorts   []string
	MinRate    int
	MaxRetries int
}

// DefaultProbeConfig returns the paranoid probe set. Every probe class is
// enabled at once so hosts that drop one kind of probe still show up.
func DefaultProbeConfig() ProbeConfig {
	return ProbeConfig{
		// ftp, ssh, telnet, http, rpc, netbios, https, smb, rdp, vnc, alt-http
		SYNPorts: []string{
			"21", "22", "23", "80", "135", "139", "443", "445", "3389", "5900", "8080", "8443",
		},
		// stateless firewalls must answer ACK with RST
		ACKPorts: []string{"80", "443", "3389"},
		// dns, dhcp, ntp, rpc, netbios, snmp, smb, ipp, mssql, ssdp, ipsec, mdns
		UDPPorts: []string{
			"53", "67", "123", "135", "137", "161", "445", "631", "1434", "1900", "4500", "5353",
		},
		MinRate:    200,
		MaxRetries: 2,
	}
}

// Options returns the nmap options for scanning target. The target is
// always the last option so it ends up as the final positional argument.
func (p ProbeConfig) Options(binary, target string) []nmap.Option {
	return []nmap.Option{
		nmap.WithBinaryPath(binary),
		nmap.WithPingScan(),
		nmap.WithDisabledDNSResolution(),
		nmap.WithICMPEchoDiscovery(),
		nmap.WithICMPTimestampDiscovery(),
		nmap.WithICMPNetMaskDiscovery(),
		nmap.WithSYNDiscovery(p.SYNPorts...),
		nmap.WithACKDiscovery(p.ACKPorts...),
		nmap.WithUDPDiscovery(p.UDPPorts...),
		nmap.WithMinRate(p.MinRate),
		nmap.WithMaxRetries(p.MaxRetries),
		// greppable output on stdout so hosts can be read as they come up
		nmap.WithCustomArguments("-oG", "-"),
		nmap.WithTargets(target),
	}
}

// Args returns the argument vector used to invoke binary against target
func (p ProbeConfig) Args(ctx context.Context, binary, target string) ([]string, error) {
	scanner, err := nmap.NewScanner(ctx, p.Options(binary, target)...)

	if err != nil {
		return nil, err
	}

	return scanner.Args(), nil
}

// CheckDependency resolves the nmap binary. An empty binaryPath looks up
// nmap on $PATH.
func CheckDependency(binaryPath string) (string, error) {
	if binaryPath == "" {
		binaryPath = DefaultBinary
	}

	path, err := exec.LookPath(binaryPath)

	if err != nil {
		return "", fmt.Errorf("%w (%s), %s", exception.ErrDependencyMissing, err, InstallHint)
	}

	return path, nil
}
