package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuhsinc/pocket-ledger/internal/cli"
)

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <transaction-id>",
		Short: "Delete a transaction",
		Long: `Delete a transaction permanently. The interactive browser ('pocket
browse') offers an undo window after each delete; this command does not.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			id := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			book, err := loadLedger(ctx, store)
			if err != nil {
				return err
			}

			tx, ok := book.Get(id)
			if !ok {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("no transaction with id %s", id)))
				return nil
			}

			book.Remove(id)
			if err := store.DeleteTransaction(ctx, id); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("deleted %s (%s, %s)",
				tx.Note, tx.Date, cli.FormatAmount(tx.Amount))))
			return nil
		},
	}
}
