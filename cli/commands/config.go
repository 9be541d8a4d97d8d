package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hazartaspinar/upscanner/internal/config"
	"github.com/spf13/cobra"
)

// creates and returns the "config" command
func configCmd(configFile *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the yaml config file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file populated with defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if *configFile == "" {
				return errors.New("no config file path provided")
			}

			if _, err := os.Stat(*configFile); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", *configFile)
			}

			if err := os.MkdirAll(filepath.Dir(*configFile), 0755); err != nil {
				return err
			}

			if err := config.Write(*config.Default(), *configFile); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", *configFile)

			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, *configFile)

			if err != nil {
				return err
			}

			return config.Encode(*conf, cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(initCmd, show)

	return cmd
}
