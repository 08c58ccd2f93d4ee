package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/pharmacatalog/internal/config"
	"github.com/JonMunkholm/pharmacatalog/internal/store"
)

var errNoDatabaseURL = errors.New("DATABASE_URL is not set")

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL catalog schema",
	}

	run := func(name string, step func(string) error) *cobra.Command {
		return &cobra.Command{
			Use:   name,
			Short: fmt.Sprintf("Apply %s migrations", name),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if a.cfg.Primary.DatabaseURL == "" {
					return errNoDatabaseURL
				}
				if a.cfg.Primary.Backend != config.BackendPostgres {
					fmt.Fprintf(cmd.ErrOrStderr(), "note: PRIMARY_BACKEND is %q; the server will not use this schema\n", a.cfg.Primary.Backend)
				}
				if err := step(a.cfg.Primary.DatabaseURL); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("migrate "+name+": done"))
				return nil
			},
		}
	}

	cmd.AddCommand(run("up", store.MigrateUp), run("down", store.MigrateDown))
	return cmd
}
