package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/pharmacatalog/internal/core"
	"github.com/JonMunkholm/pharmacatalog/internal/sheet"
)

func newImportCmd(a *app) *cobra.Command {
	var (
		file   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the catalog with the products in a spreadsheet",
		Long: `Import reads an .xlsx, .xls or .csv file whose first sheet has the
columns PRODUCT, UNIT and COMPANY FULL NAME, classifies every row and
replaces the stored catalog with the result.

A row without a product name or company rejects the whole file.`,
		Example: "  catalogctl import --file stock.xlsx\n  catalogctl import -f stock.csv --dry-run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open %s: %w", file, err)
			}
			defer f.Close()

			name := filepath.Base(file)
			rows, err := sheet.Read(name, f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				products, err := core.Normalize(rows)
				if err != nil {
					return describe(err)
				}
				fmt.Fprintln(out, categoryCounts(products))
				fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%d products parsed from %s (dry run, nothing stored)", len(products), name)))
				return nil
			}

			svc, closeStore, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			result, err := svc.Upload(cmd.Context(), name, rows)
			if err != nil {
				return describe(err)
			}
			fmt.Fprintln(out, successStyle.Render(result.Message))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "spreadsheet to import (required)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and classify without storing")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// describe attaches the operator message and code to err, keeping err in
// the chain.
func describe(err error) error {
	msg := core.MapError(err)
	var ve *core.ValidationError
	if errors.As(err, &ve) {
		return fmt.Errorf("%s (Code: %s): %w", msg.Action, msg.Code, err)
	}
	return fmt.Errorf("%s (Code: %s): %w", msg.Message, msg.Code, err)
}
