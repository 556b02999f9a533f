package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/hamlog/internal/record"
	"github.com/roach88/hamlog/internal/store"
)

// NewLogCommand creates the log command.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <callsign>",
		Short: "Interactively log a contact",
		Long: `Log a contact with the given callsign.

The contact fields are collected interactively. If the callsign is not in
the logbook yet, it is fetched from the lookup service and stored first.
The constructed record is validated against the store's expected column
set before insertion; a mismatch aborts the command.

Example:
  hamlog log K1ABC`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runLog(opts *RootOptions, call string, cmd *cobra.Command) error {
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

	fields, err := promptQsoFields(cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read contact fields", err)
	}

	// The prompt sequence is external input; validate its shape against
	// the store's column contract before building the record.
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	if err := store.ValidateColumns(record.KindQso, names); err != nil {
		return WrapExitError(ExitCommandError, "constructed record does not match the qso column set", err)
	}

	qso, err := buildQso(fields)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid contact fields", err)
	}

	qsoID, err := newLogbook(st, client).LogContact(ctx, call, qso)
	if err != nil {
		return err
	}

	return formatter(opts, cmd).Success(
		fmt.Sprintf("contact with %s logged (qso %d)", record.NormalizeCall(call), qsoID))
}
