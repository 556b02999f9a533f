package cli

import (
	"context"
	"fmt"

	"github.com/roach88/hamlog/internal/config"
	"github.com/roach88/hamlog/internal/logbook"
	"github.com/roach88/hamlog/internal/qrz"
	"github.com/roach88/hamlog/internal/store"
)

// loadConfig loads the configuration and applies the --db override.
func loadConfig(opts *RootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.Database != "" {
		cfg.Database = opts.Database
	}
	return cfg, nil
}

// openStore opens the logbook database. With requireSchema, a missing
// schema is a command error pointing the user at 'hamlog init'.
func openStore(ctx context.Context, cfg config.Config, requireSchema bool) (*store.Store, error) {
	st, err := store.Open(cfg.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open logbook database", err)
	}

	if requireSchema {
		ok, err := st.HasSchema(ctx)
		if err != nil {
			st.Close()
			return nil, WrapExitError(ExitCommandError, "failed to inspect logbook database", err)
		}
		if !ok {
			st.Close()
			return nil, WrapExitError(ExitCommandError,
				fmt.Sprintf("no logbook schema in %s", cfg.Database),
				&store.Error{Code: store.ErrCodeNoSchema, Message: "run 'hamlog init' first"})
		}
	}

	return st, nil
}

// newLookupClient builds the lookup client from the configured
// credentials. Both username and password must be present.
func newLookupClient(cfg config.Config) (*qrz.Client, error) {
	if cfg.Lookup.Username == "" || cfg.Lookup.Password == "" {
		return nil, NewExitError(ExitCommandError,
			fmt.Sprintf("lookup credentials missing: set %s (config or env) and %s", config.EnvUsername, config.EnvPassword))
	}
	return qrz.New(cfg.Lookup.URL, cfg.Lookup.Username, cfg.Lookup.Password), nil
}

// newLogbook wires store and lookup client into the coordinator.
func newLogbook(st *store.Store, client *qrz.Client) *logbook.Logbook {
	return logbook.New(st, client, nil)
}
