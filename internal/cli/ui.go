package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"strategist/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1)

	reportStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(1, 2).
			Width(100)

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	targetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	stopStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

func printResult(res *models.AnalysisResult) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s — %s", res.Ticker, res.Risk)))
	fmt.Println(mutedStyle.Render("As of " + res.GeneratedAt.Format("2006-01-02 15:04")))
	fmt.Println(reportStyle.Render(res.Report))

	if res.Signal.TargetPrice != nil {
		fmt.Println(targetStyle.Render(fmt.Sprintf("Target price: $%.2f", *res.Signal.TargetPrice)))
	} else {
		fmt.Println(mutedStyle.Render("No target price found in the report."))
	}
	if res.Signal.StopLoss != nil {
		fmt.Println(stopStyle.Render(fmt.Sprintf("Stop loss:    $%.2f", *res.Signal.StopLoss)))
	} else {
		fmt.Println(mutedStyle.Render("No stop-loss found in the report."))
	}
}
