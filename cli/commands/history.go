package commands

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/hazartaspinar/upscanner/internal/history"
	"github.com/spf13/cobra"
)

func openHistory(cmd *cobra.Command, props *CommandProps, configFile string) (history.Service, error) {
	conf, err := loadConfig(cmd, configFile)

	if err != nil {
		return nil, err
	}

	if conf.History.File == "" {
		return nil, errors.New("no history database configured")
	}

	return props.OpenHistory(conf.History.File)
}

// creates and returns the "history" command and its sub-commands
func historyCmd(props *CommandProps, configFile *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previous discovery runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := openHistory(cmd, props, *configFile)

			if err != nil {
				return err
			}

			runs, err := service.GetRecentRuns(limit)

			if err != nil {
				return err
			}

			printRuns(cmd.OutOrStdout(), runs)

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of runs to list (0 lists all)")

	show := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Print the per subnet results of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := openHistory(cmd, props, *configFile)

			if err != nil {
				return err
			}

			run, err := service.GetRun(args[0])

			if err != nil {
				return err
			}

			return printRun(cmd.OutOrStdout(), run)
		},
	}

	remove := &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Remove a run from history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := openHistory(cmd, props, *configFile)

			if err != nil {
				return err
			}

			if err := service.DeleteRun(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed run %s\n", args[0])

			return nil
		},
	}

	cmd.AddCommand(show, remove)

	return cmd
}

func finishedAt(run *history.Run) string {
	if run.FinishedAt == nil {
		return "incomplete"
	}

	return run.FinishedAt.Sub(run.StartedAt).Round(time.Second).String()
}

func printRuns(out io.Writer, runs []*history.Run) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tSTARTED\tDURATION\tSUBNETS\tFAILED\tHOSTS\tOUTPUT")

	for _, r := range runs {
		fmt.Fprintf(
			w,
			"%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			r.ID,
			r.StartedAt.Format(time.DateTime),
			finishedAt(r),
			r.Subnets,
			r.Failed,
			r.Total,
			r.Output,
		)
	}

	w.Flush()
}

func printRun(out io.Writer, run *history.Run) error {
	fmt.Fprintf(out, "Run:      %s\n", run.ID)
	fmt.Fprintf(out, "Started:  %s\n", run.StartedAt.Format(time.DateTime))
	fmt.Fprintf(out, "Duration: %s\n", finishedAt(run))
	fmt.Fprintf(out, "Input:    %s\n", run.Input)
	fmt.Fprintf(out, "Output:   %s\n", run.Output)
	fmt.Fprintf(out, "Hosts:    %d\n\n", run.Total)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "#\tSUBNET\tSTATE\tFOUND\tERROR")

	for _, res := range run.Results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", res.Position, res.Subnet, res.State, res.Found, res.Error)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	for _, res := range run.Results {
		hosts, err := res.HostList()

		if err != nil {
			return err
		}

		for _, h := range hosts {
			fmt.Fprintf(out, "%s\t%s\n", res.Subnet, h)
		}
	}

	return nil
}
