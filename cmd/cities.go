package cmd

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/jamonette/tzol/internal/cities"
	"github.com/jamonette/tzol/internal/clock"
	"github.com/jamonette/tzol/internal/ui"
)

func newCitiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cities [filter]",
		Short: "List known cities and their timezones",
		Long: `Lists every city in the built-in table with its IANA timezone and
current UTC offset. An optional filter keeps rows whose city or timezone
contains it (case-insensitive).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter string
			if len(args) == 1 {
				filter = args[0]
			}
			entries := filterEntries(a.table.Entries(), filter)
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Dimf("No cities match %q.", filter))
				return nil
			}

			instant := now()
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"City", "Timezone", "UTC Offset"})
			table.SetBorder(false)
			table.SetColumnSeparator("  ")
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoWrapText(false)
			for _, e := range entries {
				table.Append([]string{e.City, e.Timezone, utcOffset(instant.In(e.Location()).Zone())})
			}
			table.Render()

			fmt.Fprintln(out, ui.Dimf("%d of %d cities", len(entries), a.table.Len()))
			return nil
		},
	}
}

func filterEntries(entries []cities.Entry, filter string) []cities.Entry {
	f := strings.ToLower(strings.TrimSpace(filter))
	if f == "" {
		return entries
	}
	return lo.Filter(entries, func(e cities.Entry, _ int) bool {
		return strings.Contains(strings.ToLower(e.City), f) ||
			strings.Contains(strings.ToLower(e.Timezone), f)
	})
}

func utcOffset(_ string, secs int) string {
	return "UTC" + clock.FormatUTCOffset(secs)
}
