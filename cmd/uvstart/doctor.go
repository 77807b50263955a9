package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"uvstart/internal/doctor"
)

func (a *app) doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check which backend tools are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := doctor.New(a.registry, a.runner)
			report := d.Check(a.cfg.ProjectDir)

			for _, status := range report.Statuses {
				if status.Available {
					fmt.Fprintf(a.stdout, "%-8s ok       %s\n", status.Backend, status.Version)
					continue
				}
				fmt.Fprintf(a.stdout, "%-8s missing  install: %s\n", status.Backend, status.InstallHint)
			}
			fmt.Fprintf(a.stdout, "\n%d of %d backends available\n",
				report.Available, report.Available+report.Missing)
			// missing optional tools are informational, not an error
			return nil
		},
	}
}

func (a *app) historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.store == nil {
				fmt.Fprintln(a.stdout, "history is disabled; set UVSTART_HISTORY_DIR to enable it")
				return nil
			}
			records, err := a.store.List(limit)
			if err != nil {
				return err
			}
			for _, rec := range records {
				fmt.Fprintln(a.stdout, rec.Summary())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum records to show")
	return cmd
}
