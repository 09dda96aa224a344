package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jamonette/tzol/internal/doctor"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the city table and local setup",
		Long: `Runs a health check on your tzol setup:

  - City table has no blank entries
  - Every timezone identifier in the table loads
  - Local timezone offset is a whole number of hours
  - Config file parses`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fails := doctor.Run(cmd.OutOrStdout(), doctor.Env{
				Table:      a.table,
				ConfigPath: a.cfgPath,
				Now:        now(),
			})
			if fails > 0 {
				return &exitError{code: 1}
			}
			return nil
		},
	}
}
