package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/hazartaspinar/upscanner/cli/commands"
	app_info "github.com/hazartaspinar/upscanner/internal/app-info"
	"github.com/hazartaspinar/upscanner/internal/core"
	"github.com/hazartaspinar/upscanner/internal/history"
	"github.com/hazartaspinar/upscanner/internal/logger"
	"github.com/spf13/viper"
)

/**
 * Main entry point for all commands
 * Here we setup run-time file locations via viper
 */

func setConfigPaths() error {
	userHomeDir, err := os.UserHomeDir()

	if err != nil {
		return err
	}

	configDir := path.Join(userHomeDir, ".config", app_info.NAME)

	if err := os.MkdirAll(configDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}

	configFile := path.Join(configDir, app_info.NAME+".yml")

	logFile := path.Join(configDir, app_info.NAME+".log")

	userCacheDir, err := os.UserCacheDir()

	if err != nil {
		return err
	}

	cacheDir := path.Join(userCacheDir, app_info.NAME)

	if err := os.MkdirAll(cacheDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}

	dbFile := path.Join(cacheDir, app_info.NAME+".db")

	// share location of files and directories globally using viper
	viper.Set("log-file", logFile)
	viper.Set("config-dir", configDir)
	viper.Set("config-file", configFile)
	viper.Set("cache-dir", cacheDir)
	viper.Set("database-file", dbFile)

	return nil
}

func openHistory(dbFile string) (history.Service, error) {
	service, err := history.Open(dbFile)

	if err != nil {
		return nil, err
	}

	return service, nil
}

// Entry point for the cli
func main() {
	log := logger.New()

	if err := setConfigPaths(); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	// SIGINT / SIGTERM kill the running nmap process and stop the batch
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := commands.Root(&commands.CommandProps{
		NewCore:     core.CreateNewAppCore,
		OpenHistory: openHistory,
	})

	// Allows "grepping" of command output
	cmd.SetOutput(os.Stdout)

	// execute the cobra command and exit with error code if necessary
	err := cmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
