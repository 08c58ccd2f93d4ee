package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/pharmacatalog/internal/core"
)

func newQueryCmd(a *app) *cobra.Command {
	var (
		c        core.Criteria
		page     int
		pageSize int
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Search and filter the stored catalog",
		Example: "  catalogctl query --search ensure\n" +
			"  catalogctl query --category \"Oral Care\" --page 2",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeStore, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			res := svc.Browse(cmd.Context(), c, page, pageSize)
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					core.Page
					Items  []core.ProductView `json:"items"`
					Source core.Source        `json:"source"`
				}{res.Page, core.Views(res.Page.Items), res.Source})
			}

			if res.Page.TotalCount == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No products found"))
				return nil
			}
			fmt.Fprintln(out, productTable(res.Page.Items))
			fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("Showing %d-%d of %d products (page %d/%d, %s)",
				res.Page.First, res.Page.Last, res.Page.TotalCount,
				res.Page.Page, res.Page.TotalPages, res.Source.StorageLabel())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&c.Search, "search", "s", "", "match product or company name, case-insensitive")
	cmd.Flags().StringVar(&c.Category, "category", core.AllCategories, "exact category")
	cmd.Flags().StringVar(&c.Company, "company", core.AllCompanies, "exact company name")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number, clamped to the available pages")
	cmd.Flags().IntVar(&pageSize, "page-size", core.DefaultPageSize, "products per page")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the page as JSON")
	return cmd
}
