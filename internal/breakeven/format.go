package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ley73/internal/compare"
)

// TableFormatter formats break-even results as a console report
type TableFormatter struct{}

// Format generates a formatted report for a break-even result
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("CONTINUATION WAGE BREAK-EVEN\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")

	if result.Name != "" {
		sb.WriteString(fmt.Sprintf("Client:        %s\n", result.Name))
	}
	sb.WriteString(fmt.Sprintf("Goal:          %s\n", tf.describeGoal(result)))
	sb.WriteString(fmt.Sprintf("Wage range:    %s to %s per day\n", compare.Money(result.MinWage), compare.Money(result.MaxWage)))
	sb.WriteString(fmt.Sprintf("Status:        %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:    %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:   %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	if result.Success {
		sb.WriteString("REQUIRED DECLARED WAGE\n")
	} else {
		sb.WriteString("BEST AVAILABLE WAGE\n")
	}
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Daily wage:    %s\n", compare.Money(result.RequiredWage)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("PROJECTED PENSION AT AGE %d\n", result.DesiredAge))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	if !result.Quote.Pension.Eligible {
		sb.WriteString("Not eligible at this age\n")
		return sb.String()
	}
	sb.WriteString(fmt.Sprintf("With continuation:    %s\n", compare.Money(result.Monthly)))
	sb.WriteString(fmt.Sprintf("Without continuation: %s\n", compare.Money(result.BaselineMonthly)))
	sb.WriteString(fmt.Sprintf("Monthly gain:         %s%s\n", tf.deltaSymbol(result.MonthlyGain), compare.Money(result.MonthlyGain)))

	if result.Target != nil {
		diff := result.Monthly.Sub(*result.Target)
		sb.WriteString(fmt.Sprintf("Target difference:    %s%s\n", tf.deltaSymbol(diff), compare.Money(diff)))
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *Result) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Helper methods

func (tf *TableFormatter) describeGoal(result *Result) string {
	if result.Goal == GoalTargetMonthly && result.Target != nil {
		return "reach " + compare.Money(*result.Target) + " per month"
	}
	return "pay more than without continuation"
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "Converged"
	}
	return "Goal not reachable"
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}
