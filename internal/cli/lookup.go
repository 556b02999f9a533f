package cli

import (
	"github.com/spf13/cobra"
)

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <callsign>",
		Short: "Query the lookup service without storing anything",
		Long: `Fetch operator data for one callsign and print it.

The logbook database is not touched; this is a read-only probe of the
remote service.

Example:
  hamlog lookup N0CALL`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runLookup(opts *RootOptions, call string, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	client, err := newLookupClient(cfg)
	if err != nil {
		return err
	}

	rec, err := client.FetchCallsign(cmd.Context(), call)
	if err != nil {
		return err
	}

	return formatter(opts, cmd).SuccessText(renderCallsign(rec), rec)
}
