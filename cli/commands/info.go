package commands

import (
	"fmt"
	"os/exec"

	app_info "github.com/hazartaspinar/upscanner/internal/app-info"
	"github.com/hazartaspinar/upscanner/internal/discovery"
	"github.com/spf13/cobra"
)

func info(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print detailed app info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, *configFile)

			if err != nil {
				return err
			}

			nmapInfo := "nmap: not found"

			binary, err := discovery.CheckDependency(conf.Nmap.BinaryPath)

			if err == nil {
				out, _ := exec.Command(binary, "--version").Output()
				nmapInfo = fmt.Sprintf("nmap: %s\n\n%s", binary, out)
			}

			fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s: %s\nmode: %s\nhistory: %s\n%s\n",
				app_info.NAME,
				app_info.VERSION,
				discovery.Mode,
				conf.History.File,
				nmapInfo,
			)

			return nil
		},
	}

	return cmd
}
