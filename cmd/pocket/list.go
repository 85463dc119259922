package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yuhsinc/pocket-ledger/internal/category"
	"github.com/yuhsinc/pocket-ledger/internal/cli"
	"github.com/yuhsinc/pocket-ledger/internal/dates"
	"github.com/yuhsinc/pocket-ledger/internal/ledger"
	"github.com/yuhsinc/pocket-ledger/internal/model"
)

func listCmd() *cobra.Command {
	var (
		modeFilter string
		query      string
		showIDs    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `Display the ledger in canonical order (newest date first, then most
recently created). The mode filter and free-text query combine: the query
matches notes and category labels, case-insensitively.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			filter := ledger.ModeFilter(modeFilter)
			if !filter.Valid() {
				return fmt.Errorf("invalid mode filter: %s (want all, expense, or income)", modeFilter)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			book, err := loadLedger(ctx, store)
			if err != nil {
				return err
			}

			rows := ledger.Filter(book.Transactions(), filter, query)
			if len(rows) == 0 {
				fmt.Println(cli.FormatInfo("No matching transactions. Use 'pocket add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			header := []string{"Date", "Category", "Note", "Amount"}
			if showIDs {
				header = append([]string{"ID"}, header...)
			}
			for i, h := range header {
				header[i] = cli.TableHeaderStyle.Render(h)
			}
			fmt.Fprintln(w, strings.Join(header, "\t"))

			for _, tx := range rows {
				cols := []string{
					dates.DisplayLabel(tx.Date),
					category.Label(tx.CategoryID),
					tx.Note,
					renderAmount(tx),
				}
				if showIDs {
					cols = append([]string{tx.ID}, cols...)
				}
				fmt.Fprintln(w, strings.Join(cols, "\t"))
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			totals := ledger.Summarize(rows)
			fmt.Printf("\n%d entries · income %s · expense %s · balance %s\n",
				totals.Count,
				cli.IncomeStyle.Render(cli.FormatAmount(totals.Income)),
				cli.ExpenseStyle.Render(cli.FormatAmount(totals.Expense)),
				cli.BoldStyle.Render(cli.FormatAmount(totals.Balance())),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeFilter, "mode", "m", "all", "mode filter (all, expense, income)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "search notes and category labels")
	cmd.Flags().BoolVar(&showIDs, "ids", false, "show transaction ids")

	return cmd
}

func renderAmount(tx model.Transaction) string {
	switch tx.Mode {
	case model.ModeIncome:
		return cli.IncomeStyle.Render("+" + cli.FormatAmount(tx.Amount))
	default:
		return cli.ExpenseStyle.Render("-" + cli.FormatAmount(tx.Amount))
	}
}
