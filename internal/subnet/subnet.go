package subnet

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/hazartaspinar/upscanner/internal/exception"
	"github.com/projectdiscovery/mapcidr"
	fileutil "github.com/projectdiscovery/utils/file"
)

var cidrSuffix = regexp.MustCompile(`\/\d{1,3}$`)

// Subnet represents a single target token from the input list. The token
// is handed to nmap untouched, it may be a CIDR, a range or a single host.
type Subnet struct {
	Index     int
	Token     string
	Addresses uint64
}

// IsCIDR returns true if the token uses CIDR notation
func (s Subnet) IsCIDR() bool {
	return cidrSuffix.MatchString(s.Token)
}

// Load reads subnets from the file at path in file order
func Load(path string) ([]Subnet, error) {
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", exception.ErrInputNotFound, path)
	}

	file, err := os.Open(path)

	if err != nil {
		return nil, err
	}

	defer file.Close()

	return Parse(file)
}

// Parse reads subnets line by line skipping blank lines and "#" comments
func Parse(r io.Reader) ([]Subnet, error) {
	subnets := []Subnet{}

	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		token := strings.TrimSpace(scanner.Text())

		if token == "" || strings.HasPrefix(token, "#") {
			continue
		}

		s := Subnet{
			Index: len(subnets) + 1,
			Token: token,
		}

		if s.IsCIDR() {
			// a malformed cidr is still nmap's problem, we just can't size it
			if count, err := mapcidr.AddressCount(token); err == nil {
				s.Addresses = count
			}
		}

		subnets = append(subnets, s)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return subnets, nil
}

// Tokens returns the raw tokens of subnets in order
func Tokens(subnets []Subnet) []string {
	tokens := make([]string, 0, len(subnets))

	for _, s := range subnets {
		tokens = append(tokens, s.Token)
	}

	return tokens
}
