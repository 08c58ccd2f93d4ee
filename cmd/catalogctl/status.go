package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the catalog is read from and written to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeStore, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			st := svc.Status(cmd.Context())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %v\n", headerStyle.Render("primary ready:"), st.PrimaryReady)
			fmt.Fprintf(out, "%s %s\n", headerStyle.Render("uploads go to:"), st.WriteTarget.StorageLabel())
			fmt.Fprintf(out, "%s %s (%d products)\n", headerStyle.Render("serving from: "), st.ReadSource.StorageLabel(), st.Count)
			return nil
		},
	}
}
