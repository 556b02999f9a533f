package cli

import (
	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <callsign>",
		Short: "Fetch one callsign from the lookup service and store it",
		Long: `Fetch operator data for one callsign and insert it into the logbook.

Adding a callsign that is already stored is an error; stored records are
never updated (re-lookup is out of scope).

Example:
  hamlog add W1AW`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runAdd(opts *RootOptions, call string, cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer st.Close()

	client, err := newLookupClient(cfg)
	if err != nil {
		return err
	}

	rec, err := newLogbook(st, client).AddCallsign(ctx, call)
	if err != nil {
		return err
	}

	return formatter(opts, cmd).SuccessText(renderCallsign(rec), rec)
}
