package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yuhsinc/pocket-ledger/internal/tui"
	"github.com/yuhsinc/pocket-ledger/internal/undo"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the ledger interactively",
		Long: `Open the interactive transaction browser: filter by mode, search notes
and category labels, and delete entries with a short undo window. A
delete applies immediately; pressing u before the window expires
restores the entry. Only the most recent deletion is undo-able.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			book, err := loadLedger(ctx, store)
			if err != nil {
				return err
			}

			return tui.Run(tui.Config{
				Ledger:  book,
				Undo:    undo.NewCoordinator(book, undoWindow()),
				Storage: store,
			})
		},
	}
}
