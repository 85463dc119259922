// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (warm apricot).
	PrimaryColor = lipgloss.Color("#FFAB91")
	// IncomeColor marks income amounts.
	IncomeColor = lipgloss.Color("#4ECDC4")
	// ExpenseColor marks expense amounts.
	ExpenseColor = lipgloss.Color("#FF6B6B")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats errors or failure messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// IncomeStyle formats income amounts.
	IncomeStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)

	// ExpenseStyle formats expense amounts.
	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	UndoIcon    = "↩"
	LedgerIcon  = "📒"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatInfo formats an info message.
func FormatInfo(message string) string {
	return InfoStyle.Render(message)
}

// FormatAmount renders a monetary amount: whole values without decimals,
// fractional values with two.
func FormatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
