package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"budgetbook/internal/service"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	UserID   int
	BudgetID int
}

// NewReportCommand creates the non-interactive budget report command: every
// summary figure the interactive summary screen shows, printed once for
// scripting.
func NewReportCommand(root *RootOptions) *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print budget summaries for a user",
		Long:  "Computes total spent, remaining balance, percent used and the per-category breakdown for one budget or all of a user's budgets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, _, err := root.bootstrap()
			if err != nil {
				return err
			}
			formatter := &OutputFormatter{
				Format:    root.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
			}
			return runReport(svc, formatter, cfg.Currency, opts)
		},
	}

	cmd.Flags().IntVar(&opts.UserID, "user", 0, "user id to report on (required)")
	cmd.Flags().IntVar(&opts.BudgetID, "budget", 0, "restrict the report to one budget id")
	cmd.MarkFlagRequired("user")

	return cmd
}

func runReport(svc *service.Services, formatter *OutputFormatter, currency string, opts *ReportOptions) error {
	if _, ok := svc.Users.ByID(opts.UserID); !ok {
		formatter.Error("E001", fmt.Sprintf("user %d not found", opts.UserID))
		return NewExitError(ExitFailure, fmt.Sprintf("user %d not found", opts.UserID))
	}

	var summaries []service.Summary
	if opts.BudgetID != 0 {
		sum, ok := svc.Budgets.Summarize(opts.BudgetID)
		if !ok {
			formatter.Error("E002", fmt.Sprintf("budget %d not found", opts.BudgetID))
			return NewExitError(ExitFailure, fmt.Sprintf("budget %d not found", opts.BudgetID))
		}
		if sum.Budget.UserID != opts.UserID {
			formatter.Error("E002", fmt.Sprintf("budget %d does not belong to user %d", opts.BudgetID, opts.UserID))
			return NewExitError(ExitFailure, fmt.Sprintf("budget %d does not belong to user %d", opts.BudgetID, opts.UserID))
		}
		summaries = append(summaries, sum)
	} else {
		for _, b := range svc.Budgets.ListByUser(opts.UserID) {
			if sum, ok := svc.Budgets.Summarize(b.ID); ok {
				summaries = append(summaries, sum)
			}
		}
		if len(summaries) == 0 {
			formatter.Error("E003", fmt.Sprintf("user %d has no budgets", opts.UserID))
			return NewExitError(ExitFailure, fmt.Sprintf("user %d has no budgets", opts.UserID))
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(summaries)
	}
	for i, sum := range summaries {
		if i > 0 {
			fmt.Fprintln(formatter.Writer)
		}
		fmt.Fprint(formatter.Writer, renderSummary(sum, currency))
	}
	return nil
}

// renderSummary formats one summary as the text report block.
func renderSummary(sum service.Summary, currency string) string {
	b := sum.Budget
	var out strings.Builder
	fmt.Fprintf(&out, "Budget '%s' (%s to %s)\n", b.Name, b.StartDate, b.EndDate)
	fmt.Fprintf(&out, "  Allowance:   %s%s\n", currency, b.Amount)
	fmt.Fprintf(&out, "  Total spent: %s%s (%s%%)\n", currency, sum.TotalSpent, sum.PercentUsed)
	fmt.Fprintf(&out, "  Remaining:   %s%s (%s%%)\n", currency, sum.Remaining, sum.PercentRemaining)
	if len(sum.Breakdown) > 0 {
		fmt.Fprintf(&out, "  Spending by category:\n")
		for _, row := range sum.Breakdown {
			fmt.Fprintf(&out, "    %-20s %s%s\n", row.CategoryName, currency, row.Total)
		}
	}
	return out.String()
}
