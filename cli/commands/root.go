package commands

import (
	"io"

	"github.com/hazartaspinar/upscanner/internal/config"
	"github.com/hazartaspinar/upscanner/internal/core"
	"github.com/hazartaspinar/upscanner/internal/history"
	"github.com/hazartaspinar/upscanner/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	NewCore     func(conf config.Config, out io.Writer) *core.Core
	OpenHistory func(dbFile string) (history.Service, error)
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool
	var configFile string
	var input string
	var output string

	cmd := &cobra.Command{
		Use:   "upscanner -f <subnets-file> -o <output-file>",
		Short: "Discover live hosts across a list of subnets using nmap",
		Long: "Runs an nmap host discovery (ICMP + TCP SYN/ACK + UDP probes) against\n" +
			"every subnet listed in the input file, one subnet at a time, and\n" +
			"appends each live address to the output file as soon as it is found.",
		Args: cobra.NoArgs,
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			logger.SetLevel(verbose, silent)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, configFile)

			if err != nil {
				return err
			}

			if conf.Log.File != "" {
				if err := logger.GlobalSetLogFile(conf.Log.File); err != nil {
					return err
				}
			}

			// from here on errors are run failures, not usage mistakes
			cmd.SilenceUsage = true

			appCore := props.NewCore(*conf, cmd.OutOrStdout())

			_, err = appCore.Run(cmd.Context(), input, output)

			return err
		},
	}

	defaultConfig, _ := viper.Get("config-file").(string)

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")
	cmd.PersistentFlags().StringVar(&configFile, "config", defaultConfig, "path to yaml config file")
	cmd.PersistentFlags().String("nmap", "", "path to the nmap binary (defaults to $PATH lookup)")

	cmd.Flags().StringVarP(&input, "file", "f", "", "file containing one subnet per line")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write live hosts to")
	cmd.Flags().Duration("timeout", 0, "kill a subnet scan after this long (0 disables)")
	cmd.Flags().Bool("no-history", false, "do not record this run in the history database")

	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("output")

	viper.BindPFlag("scan.timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("nmap.binary-path", cmd.PersistentFlags().Lookup("nmap"))
	viper.BindPFlag("history.disabled", cmd.Flags().Lookup("no-history"))

	cmd.AddCommand(historyCmd(props, &configFile))
	cmd.AddCommand(configCmd(&configFile))
	cmd.AddCommand(clean())
	cmd.AddCommand(info(&configFile))
	cmd.AddCommand(version())

	return cmd
}

// config file given explicitly with --config must exist
func loadConfig(cmd *cobra.Command, configFile string) (*config.Config, error) {
	mustExist := cmd.Flags().Changed("config")

	return config.New(viper.GetViper(), configFile, mustExist)
}
