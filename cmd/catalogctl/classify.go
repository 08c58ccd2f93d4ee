package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/pharmacatalog/internal/core"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "classify PRODUCT COMPANY",
		Short:   "Print the category a product would be filed under",
		Example: "  catalogctl classify \"ENSURE VAN\" \"ABBOTT HEALTH(NUT)\"",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), core.Classify(args[0], args[1]))
			return nil
		},
	}
}
