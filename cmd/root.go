package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jamonette/tzol/internal/cities"
	"github.com/jamonette/tzol/internal/config"
	"github.com/jamonette/tzol/internal/display"
	"github.com/jamonette/tzol/internal/logger"
	"github.com/jamonette/tzol/internal/ui"
)

// now is the clock used for every row; tests replace it.
var now = time.Now

// exitError carries a non-zero exit status for failures that have already
// been reported to the user.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

type app struct {
	cfgFile string
	cfgPath string
	cfg     *config.Config
	table   *cities.Table
	stderr  io.Writer
}

// NewRootCmd builds the tzol command tree.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{table: cities.Default(), stderr: stderr}

	root := &cobra.Command{
		Use:   "tzol [city ...]",
		Short: "Show a 24-hour clock strip for your timezone and the given cities",
		Long: `tzol prints a row of 24 hours for your local timezone, then one row per
city. Column N is hour N of your local day; the label in that column is
the simultaneous hour in the city. Workday hours (09-17) are shaded and
the current hour is marked.

City names must match the built-in table exactly, e.g.:
  tzol London "New York" Tokyo

Run 'tzol cities' to list known cities.`,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runClock,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ~/.tzol/config.yaml)")

	root.AddCommand(newCitiesCmd(a), newDoctorCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, required := a.cfgFile, true
	if path == "" {
		required = false
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("determine config path: %w", err)
		}
	}
	cfg, loadErr := config.Load(path, required)
	if loadErr != nil {
		// doctor reports a broken config itself
		if cmd.Name() != "doctor" {
			return loadErr
		}
		def := config.DefaultConfig()
		cfg = &def
	}
	a.cfg, a.cfgPath = cfg, path

	out, _ := cmd.OutOrStdout().(*os.File)
	ui.Apply(cfg.ColorMode(), out)

	errFile, _ := a.stderr.(*os.File)
	if err := logger.Setup(a.stderr, cfg.LogLevel, ui.IsTerminal(errFile)); err != nil {
		return err
	}
	if loadErr != nil {
		log.Warn().Err(loadErr).Str("config", path).Msg("using default config")
	}
	log.Debug().
		Str("config", path).
		Int("cities", a.table.Len()).
		Bool("color", ui.Enabled()).
		Msg("startup")
	return nil
}

func (a *app) runClock(cmd *cobra.Command, args []string) error {
	entries, err := a.table.Resolve(args)
	if err != nil {
		var nf *cities.NotFoundError
		if errors.As(err, &nf) {
			log.Debug().Str("city", nf.City).Msg("city not in table")
			fmt.Fprintln(cmd.OutOrStdout(), nf.Error())
			return &exitError{code: 1}
		}
		return err
	}
	for _, e := range entries {
		log.Debug().Str("city", e.City).Str("timezone", e.Timezone).Msg("resolved")
	}

	r := display.NewRenderer(cmd.OutOrStdout(), a.cfg.LabelWidth)
	return r.Render(entries, now())
}

// Run executes tzol with args and returns the process exit status.
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintln(stderr, "Error:", err)
	return 1
}

// Execute runs the root command against the process arguments and exits
// on failure.
func Execute() {
	if code := Run(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}
