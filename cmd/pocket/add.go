package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuhsinc/pocket-ledger/internal/category"
	"github.com/yuhsinc/pocket-ledger/internal/cli"
	"github.com/yuhsinc/pocket-ledger/internal/common"
	"github.com/yuhsinc/pocket-ledger/internal/draft"
	"github.com/yuhsinc/pocket-ledger/internal/model"
)

func addCmd() *cobra.Command {
	var (
		mode       string
		amount     float64
		note       string
		date       string
		categoryID string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense or income entry",
		Long: `Build an entry from the given fields and commit it to the ledger.
Validation matches the entry form: a non-empty note of at most 15
characters, a positive amount, a YYYY-MM-DD date, and a category.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			editor := draft.NewEditor(nil)
			editor.SetMode(model.Mode(mode))
			editor.SetAmount(amount)
			editor.SetNote(note)
			if date != "" {
				editor.SetDate(date)
			}
			editor.SetCategory(model.CategoryID(categoryID))

			d := editor.Draft()
			if err := draft.ValidateForCommit(d); err != nil {
				return common.NewUserError("invalid entry", err)
			}
			if !category.Known(d.CategoryID) {
				fmt.Println(cli.WarningStyle.Render(
					fmt.Sprintf("unknown category %q, it will display as %s", d.CategoryID, category.Label(d.CategoryID))))
			}

			book, err := loadLedger(ctx, store)
			if err != nil {
				return err
			}

			tx := book.Commit(d, userID())
			editor.Reset(nil)

			if err := store.SaveTransaction(ctx, tx); err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("recorded %s %s (%s) on %s",
				tx.Mode, cli.FormatAmount(tx.Amount), tx.Note, tx.Date)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "expense", "entry mode (expense, income)")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "amount, must be positive")
	cmd.Flags().StringVarP(&note, "note", "n", "", "note, at most 15 characters")
	cmd.Flags().StringVarP(&date, "date", "d", "", "entry date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&categoryID, "category", "c", "", "category id (see 'pocket categories')")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("note")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
