package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yuhsinc/pocket-ledger/internal/category"
	"github.com/yuhsinc/pocket-ledger/internal/cli"
	"github.com/yuhsinc/pocket-ledger/internal/dates"
	"github.com/yuhsinc/pocket-ledger/internal/ledger"
	"github.com/yuhsinc/pocket-ledger/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor)

	cursorStyle = lipgloss.NewStyle().
			Foreground(cli.PrimaryColor).
			Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cli.PrimaryColor).
			Padding(0, 1)
)

var filterLabels = map[ledger.ModeFilter]string{
	ledger.FilterAll:     "全部",
	ledger.FilterExpense: "支出",
	ledger.FilterIncome:  "收入",
}

// View renders the browser.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(cli.LedgerIcon + " pocket-ledger"))
	b.WriteString("\n\n")

	b.WriteString(cli.SubtleStyle.Render("篩選: "))
	b.WriteString(filterLabels[m.filter])
	b.WriteString("  ")
	b.WriteString(cli.SubtleStyle.Render("搜尋: "))
	if m.typing {
		b.WriteString(m.search.View())
	} else if q := m.search.Value(); q != "" {
		b.WriteString(q)
	} else {
		b.WriteString(cli.SubtleStyle.Render("(無)"))
	}
	b.WriteString("\n\n")

	rows := m.visible()
	if len(rows) == 0 {
		b.WriteString(cli.SubtleStyle.Render("沒有符合的交易"))
		b.WriteString("\n")
	}
	for i, tx := range rows {
		b.WriteString(m.renderRow(i, tx))
		b.WriteString("\n")
	}

	totals := ledger.Summarize(rows)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s\n",
		cli.SubtleStyle.Render("收入"),
		cli.IncomeStyle.Render(cli.FormatAmount(totals.Income)),
		cli.SubtleStyle.Render("支出"),
		cli.ExpenseStyle.Render(cli.FormatAmount(totals.Expense)),
		cli.SubtleStyle.Render("結餘"),
		cli.BoldStyle.Render(cli.FormatAmount(totals.Balance())),
	))

	if snap := m.cfg.Undo.Snapshot(); snap.Visible {
		banner := fmt.Sprintf("已刪除「%s」 %s 按 u 撤銷", snap.PendingTitle, cli.UndoIcon)
		b.WriteString("\n")
		b.WriteString(bannerStyle.Render(banner))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("↑/↓ 移動 · f 篩選 · / 搜尋 · d 刪除 · u 撤銷 · q 離開"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderRow(i int, tx model.Transaction) string {
	marker := "  "
	if i == m.cursor && !m.typing {
		marker = cursorStyle.Render("❯ ")
	}

	amount := cli.FormatAmount(tx.Amount)
	switch tx.Mode {
	case model.ModeIncome:
		amount = cli.IncomeStyle.Render("+" + amount)
	case model.ModeExpense:
		amount = cli.ExpenseStyle.Render("-" + amount)
	}

	return fmt.Sprintf("%s%-10s %-6s %-18s %s",
		marker,
		dates.DisplayLabel(tx.Date),
		category.Label(tx.CategoryID),
		tx.Note,
		amount,
	)
}
