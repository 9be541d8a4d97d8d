package core

import (
	"io"

	"github.com/hazartaspinar/upscanner/internal/config"
	"github.com/hazartaspinar/upscanner/internal/discovery"
	"github.com/hazartaspinar/upscanner/internal/history"
	"github.com/hazartaspinar/upscanner/internal/logger"
)

// CreateNewAppCore creates and returns a new instance of *core.Core wired
// to nmap, the history database and a console reporter writing to out
func CreateNewAppCore(conf config.Config, out io.Writer) *Core {
	log := logger.Component("core")

	runner := discovery.NewRunner(
		conf.Nmap.BinaryPath,
		discovery.NewExecCollaborator(),
		discovery.WithTimeout(conf.Scan.Timeout),
	)

	var historyService history.Service

	if !conf.History.Disabled && conf.History.File != "" {
		service, err := history.Open(conf.History.File)

		if err != nil {
			log.Warn().
				Err(err).
				Str("file", conf.History.File).
				Msg("failed to open history database, runs will not be recorded")
		} else {
			historyService = service
		}
	}

	return New(runner, historyService, NewConsoleReporter(out))
}
