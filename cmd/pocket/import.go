package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/yuhsinc/pocket-ledger/internal/cli"
	"github.com/yuhsinc/pocket-ledger/internal/draft"
	"github.com/yuhsinc/pocket-ledger/internal/model"
)

func importCmd() *cobra.Command {
	var skipHeader bool

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk-import transactions from a CSV file",
		Long: `Import entries from a CSV file with columns: date, mode, amount, note,
category. Each row passes through the same commit validation as 'pocket
add'; rows that fail validation are reported and skipped. Unknown
category ids are kept and render with the catch-all category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open csv: %w", err)
			}
			defer f.Close()

			records, err := readRecords(f, skipHeader)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println(cli.FormatInfo("Nothing to import."))
				return nil
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

			bar := progressbar.NewOptions(len(records),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Importing transactions..."),
			)

			imported, skipped := 0, 0
			for line, rec := range records {
				d, rowErr := rowToDraft(rec)
				if rowErr == nil {
					rowErr = draft.ValidateForCommit(d)
				}
				if rowErr != nil {
					fmt.Fprintln(os.Stderr, cli.WarningStyle.Render(
						fmt.Sprintf("row %d skipped: %v", line+1, rowErr)))
					skipped++
					_ = bar.Add(1)
					continue
				}

				tx := book.Commit(d, userID())
				if err := store.SaveTransaction(ctx, tx); err != nil {
					return fmt.Errorf("failed to save imported transaction: %w", err)
				}
				imported++
				_ = bar.Add(1)
			}

			fmt.Println()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("imported %d transactions (%d skipped)", imported, skipped)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipHeader, "skip-header", true, "treat the first row as a header")

	return cmd
}

func readRecords(r io.Reader, skipHeader bool) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 5
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if skipHeader && len(records) > 0 {
		records = records[1:]
	}
	return records, nil
}

// rowToDraft maps a csv row (date, mode, amount, note, category) onto a
// draft, ready for commit validation.
func rowToDraft(rec []string) (model.Draft, error) {
	amount, err := strconv.ParseFloat(rec[2], 64)
	if err != nil {
		return model.Draft{}, fmt.Errorf("bad amount %q: %w", rec[2], err)
	}

	// Unknown category ids are kept; the registry renders them with the
	// fallback category.
	catID := model.CategoryID(rec[4])

	return model.Draft{
		Mode:       model.Mode(rec[1]),
		Amount:     amount,
		Note:       rec[3],
		Date:       rec[0],
		CategoryID: catID,
	}, nil
}
