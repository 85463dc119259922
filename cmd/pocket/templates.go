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
	"github.com/yuhsinc/pocket-ledger/internal/common"
	"github.com/yuhsinc/pocket-ledger/internal/draft"
	"github.com/yuhsinc/pocket-ledger/internal/model"
	"github.com/yuhsinc/pocket-ledger/internal/template"
)

func templatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage quick templates",
		Long:  `List, add, remove, and apply reusable quick templates for fast entry.`,
	}

	cmd.AddCommand(listTemplatesCmd())
	cmd.AddCommand(addTemplateCmd())
	cmd.AddCommand(rmTemplateCmd())
	cmd.AddCommand(applyTemplateCmd())

	return cmd
}

func listTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List quick templates",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			templates, err := loadTemplates(ctx, store)
			if err != nil {
				return err
			}

			if templates.Len() == 0 {
				fmt.Println(cli.FormatInfo("No templates. Use 'pocket templates add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Note"),
				cli.TableHeaderStyle.Render("Amount"),
				cli.TableHeaderStyle.Render("Category"))
			for _, tpl := range templates.Templates() {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
					tpl.ID, tpl.Note, tpl.Amount, category.Label(tpl.CategoryID))
			}
			return w.Flush()
		},
	}
}

func addTemplateCmd() *cobra.Command {
	var (
		note       string
		amount     int64
		categoryID string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a quick template",
		Long: `Create a reusable preset of note, amount, and category. The note is
trimmed and limited to 15 characters; the amount must be a positive
integer.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			trimmed, err := template.ValidateNew(note, amount)
			if err != nil {
				return common.NewUserError("invalid template", err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			templates, err := loadTemplates(ctx, store)
			if err != nil {
				return err
			}

			tpl := model.QuickTemplate{
				ID:         template.NewID(),
				Note:       trimmed,
				Amount:     amount,
				CategoryID: model.CategoryID(categoryID),
			}
			templates.Add(tpl)

			if err := store.SaveTemplate(ctx, tpl); err != nil {
				return fmt.Errorf("failed to save template: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("added template %s (%s, %d, %s)",
				tpl.ID, tpl.Note, tpl.Amount, category.Label(tpl.CategoryID))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "n", "", "template note, at most 15 characters")
	cmd.Flags().Int64VarP(&amount, "amount", "a", 0, "template amount, positive integer")
	cmd.Flags().StringVarP(&categoryID, "category", "c", "other", "category id")
	_ = cmd.MarkFlagRequired("note")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func rmTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <template-id>",
		Short: "Remove a quick template",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			id := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			templates, err := loadTemplates(ctx, store)
			if err != nil {
				return err
			}

			if _, ok := templates.Get(id); !ok {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("no template with id %s", id)))
				return nil
			}

			templates.Remove(id)
			if err := store.DeleteTemplate(ctx, id); err != nil {
				return fmt.Errorf("failed to delete template: %w", err)
			}

			fmt.Println(cli.FormatSuccess("removed template " + id))
			return nil
		},
	}
}

func applyTemplateCmd() *cobra.Command {
	var (
		note string
		date string
	)

	cmd := &cobra.Command{
		Use:   "apply <template-id>",
		Short: "Record an entry from a quick template",
		Long: `Apply a template to a fresh draft and commit it. The template supplies
amount and category; the note and date stay whatever the draft already
holds, so --note and --date override the template. Without --note the
template's own note is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			id := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			templates, err := loadTemplates(ctx, store)
			if err != nil {
				return err
			}

			tpl, ok := templates.Get(id)
			if !ok {
				// Allow matching by note for convenience
				for _, t := range templates.Templates() {
					if strings.EqualFold(t.Note, id) {
						tpl, ok = t, true
						break
					}
				}
			}
			if !ok {
				return fmt.Errorf("no template with id or note %q", id)
			}

			editor := draft.NewEditor(nil)
			if note != "" {
				editor.SetNote(note)
			}
			if date != "" {
				editor.SetDate(date)
			}
			editor.ApplyTemplate(tpl)

			// Quick entry: an empty note falls back to the template's
			// note at the edge, not inside the editor merge.
			if editor.Draft().Note == "" {
				editor.SetNote(tpl.Note)
			}

			d := editor.Draft()
			if err := draft.ValidateForCommit(d); err != nil {
				return common.NewUserError("invalid entry", err)
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

	cmd.Flags().StringVarP(&note, "note", "n", "", "override the note")
	cmd.Flags().StringVarP(&date, "date", "d", "", "entry date, YYYY-MM-DD (default today)")

	return cmd
}
