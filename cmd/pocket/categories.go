package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yuhsinc/pocket-ledger/internal/category"
	"github.com/yuhsinc/pocket-ledger/internal/cli"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category registry",
		Long: `Display the fixed category set. Categories are a closed registry:
entries referencing an unknown id render with the catch-all category
rather than failing.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Label"),
				cli.TableHeaderStyle.Render("Icon"))
			for _, c := range category.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Label, c.Icon)
			}
			return w.Flush()
		},
	}
}
