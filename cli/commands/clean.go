package commands

import (
	"errors"
	"os"

	"github.com/hazartaspinar/upscanner/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func removeIfExists(path string) (bool, error) {
	if path == "" {
		return false, nil
	}

	err := os.Remove(path)

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return err == nil, err
}

// creates and returns the "clean" command
func clean() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Removes the history database and log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			dbFile, _ := viper.Get("database-file").(string)

			removed, err := removeIfExists(dbFile)

			if err != nil {
				return err
			}

			if removed {
				log.Info().Str("file", dbFile).Msg("removed database file")
			}

			logFile, _ := viper.Get("log-file").(string)

			removed, err = removeIfExists(logFile)

			if err != nil {
				return err
			}

			if removed {
				log.Info().Str("file", logFile).Msg("removed log file")
			}

			return nil
		},
	}

	return cmd
}
