package main

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuhsinc/pocket-ledger/internal/cli"
	"github.com/yuhsinc/pocket-ledger/internal/ledger"
	"github.com/yuhsinc/pocket-ledger/internal/model"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

func summaryCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income, expense, and balance totals",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			if month != "" && !monthPattern.MatchString(month) {
				return fmt.Errorf("invalid month: %s (want YYYY-MM)", month)
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

			rows := book.Transactions()
			if month != "" {
				rows = filterMonth(rows, month)
			}

			totals := ledger.Summarize(rows)
			scope := "all time"
			if month != "" {
				scope = month
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s Summary (%s)", cli.LedgerIcon, scope)))
			fmt.Printf("entries  %d\n", totals.Count)
			fmt.Printf("income   %s\n", cli.IncomeStyle.Render(cli.FormatAmount(totals.Income)))
			fmt.Printf("expense  %s\n", cli.ExpenseStyle.Render(cli.FormatAmount(totals.Expense)))
			fmt.Printf("balance  %s\n", cli.BoldStyle.Render(cli.FormatAmount(totals.Balance())))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "restrict to a calendar month (YYYY-MM)")

	return cmd
}

// filterMonth keeps transactions whose date falls in the given month. The
// fixed-width date format makes this a prefix check.
func filterMonth(transactions []model.Transaction, month string) []model.Transaction {
	out := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if strings.HasPrefix(tx.Date, month+"-") {
			out = append(out, tx)
		}
	}
	return out
}
