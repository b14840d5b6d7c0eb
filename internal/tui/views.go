package tui

import (
	"fmt"
	"strings"

	"budgetbook/internal/service"
)

const (
	userHeader     = "ID    | Username        | Name"
	budgetHeader   = "ID    | Name                           | Start        | End          | Amount"
	categoryHeader = "ID    | Name"
	expenseHeader  = "ID    | Description                    | Category             | Date         | Amount"
)

// banner renders the two lines above every frame: today's date and the
// active user, or a note that none is selected yet.
func (m *Model) banner() string {
	var b strings.Builder
	b.WriteString(bannerStyle.Render("Budget Book"))
	b.WriteString("  ")
	b.WriteString(m.now().Format("Monday, 02 January 2006"))
	b.WriteString("\n")
	if u, ok := m.sess.ActiveUser(); ok {
		b.WriteString(fmt.Sprintf("Active user: %s (%s)", u.Name, u.Username))
	} else {
		b.WriteString(hintStyle.Render("No active user"))
	}
	b.WriteString("\n")
	return b.String()
}

// money prefixes an amount with the configured currency symbol.
func (m *Model) money(s fmt.Stringer) string {
	return m.currency + s.String()
}

// progressBar renders a fixed-width used/remaining bar. pct is clamped to
// [0, 100].
func progressBar(pct int64) string {
	const width = 30
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct) * width / 100
	return "[" +
		progressFillStyle.Render(strings.Repeat("█", filled)) +
		strings.Repeat("░", width-filled) +
		"]"
}

// summaryLines renders a budget summary: allowance, spent, remaining, the
// usage bar and the per-category breakdown.
func (m *Model) summaryLines(sum service.Summary) []string {
	b := sum.Budget
	lines := []string{
		fmt.Sprintf("Budget '%s' (%s to %s)", b.Name, b.StartDate, b.EndDate),
		"",
		fmt.Sprintf("Allowance:   %s", m.money(b.Amount)),
		fmt.Sprintf("Total spent: %s (%s%%)", m.money(sum.TotalSpent), sum.PercentUsed),
		fmt.Sprintf("Remaining:   %s (%s%%)", m.money(sum.Remaining), sum.PercentRemaining),
		"",
		progressBar(sum.PercentUsed.IntPart()),
	}
	if len(sum.Breakdown) > 0 {
		lines = append(lines, "", "Spending by category:")
		for _, row := range sum.Breakdown {
			lines = append(lines, fmt.Sprintf("  %-20s %s", row.CategoryName, m.money(row.Total)))
		}
	}
	return lines
}
