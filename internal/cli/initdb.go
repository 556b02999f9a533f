package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// InitOptions holds flags for the init command.
type InitOptions struct {
	*RootOptions
	Force bool
}

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the logbook schema",
		Long: `Create the logbook schema in the configured database.

Schema creation is idempotent and never drops or alters existing tables.
If the database already holds logbook data, init asks for confirmation
first: re-running init is usually preceded by deleting the old file, and
this gate catches the case where that deletion did not happen.

Example:
  hamlog init --db ~/.hamlog.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "skip the confirmation prompt when the database already holds data")

	return cmd
}

func runInit(opts *InitOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer st.Close()

	hasData, err := st.HasData(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to inspect logbook database", err)
	}

	if hasData && !opts.Force {
		fmt.Fprintf(cmd.OutOrStdout(),
			"Database %s already contains logbook data.\n"+
				"init will not drop it, but if you meant to start fresh, delete the file first.\n"+
				"Continue? [y/N]: ", cfg.Database)
		if !confirm(cmd) {
			return NewExitError(ExitFailure, "init aborted")
		}
	}

	if err := st.CreateSchema(ctx); err != nil {
		return WrapExitError(ExitCommandError, "failed to create schema", err)
	}

	return formatter(opts.RootOptions, cmd).Success(fmt.Sprintf("logbook schema ready in %s", cfg.Database))
}

// confirm reads one line from the command's input and accepts y/yes.
func confirm(cmd *cobra.Command) bool {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
