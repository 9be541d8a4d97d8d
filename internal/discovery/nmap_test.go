package discovery_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hazartaspinar/upscanner/internal/discovery"
	"github.com/hazartaspinar/upscanner/internal/exception"
	"github.com/stretchr/testify/assert"
)

func TestProbeConfig(t *testing.T) {
	t.Run("builds paranoid argument vector", func(st *testing.T) {
		probe := discovery.DefaultProbeConfig()

		args, err := probe.Args(context.Background(), "/usr/bin/nmap", "10.0.0.0/24")

		assert.NoError(st, err)

		expected := []string{
			"-sn",
			"-n",
			"-PE",
			"-PP",
			"-PM",
			"-PS21,22,23,80,135,139,443,445,3389,5900,8080,8443",
			"-PA80,443,3389",
			"-PU53,67,123,135,137,161,445,631,1434,1900,4500,5353",
			"--min-rate",
			"200",
			"--max-retries",
			"2",
		}

		for _, e := range expected {
			assert.Contains(st, args, e)
		}

		assert.Equal(st, "10.0.0.0/24", args[len(args)-1])

		for i, a := range args {
			if a == "-oG" {
				assert.Equal(st, "-", args[i+1])
			}
		}

		assert.Contains(st, args, "-oG")
	})

	t.Run("keeps target last with custom probe ports", func(st *testing.T) {
		probe := discovery.DefaultProbeConfig()
		probe.SYNPorts = []string{"22"}

		args, err := probe.Args(context.Background(), "/usr/bin/nmap", "10.0.0.1-20")

		assert.NoError(st, err)
		assert.Contains(st, args, "-PS22")
		assert.Equal(st, "10.0.0.1-20", args[len(args)-1])
	})
}

func TestCheckDependency(t *testing.T) {
	t.Run("returns dependency missing error", func(st *testing.T) {
		path := filepath.Join(st.TempDir(), "nmap")

		binary, err := discovery.CheckDependency(path)

		assert.Equal(st, "", binary)
		assert.Error(st, err)
		assert.True(st, errors.Is(err, exception.ErrDependencyMissing))
		assert.Contains(st, err.Error(), discovery.InstallHint)
	})

	t.Run("resolves configured binary path", func(st *testing.T) {
		exe, err := os.Executable()

		assert.NoError(st, err)

		binary, err := discovery.CheckDependency(exe)

		assert.NoError(st, err)
		assert.Equal(st, exe, binary)
	})
}
