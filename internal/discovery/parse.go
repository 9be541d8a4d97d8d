package discovery

import (
	"regexp"
	"strings"
)

const upMarker = "Status: Up"

var hostRegexp = regexp.MustCompile(`Host: (?P<ip>\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})\b`)

// ParseHostLine extracts the address from a greppable nmap line reporting a
// host as up. Any other line returns false.
func ParseHostLine(line string) (string, bool) {
	if !strings.Contains(line, upMarker) {
		return "", false
	}

	match := hostRegexp.FindStringSubmatch(line)

	if match == nil {
		return "", false
	}

	return match[hostRegexp.SubexpIndex("ip")], true
}
