package report

import "github.com/charmbracelet/lipgloss"

const reportWidth = 32

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Width(reportWidth).
			Align(lipgloss.Center)

	equationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Width(reportWidth).
			Align(lipgloss.Center)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")).
			Width(reportWidth).
			Align(lipgloss.Center)

	rootStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Width(reportWidth).
			Align(lipgloss.Center)

	caseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Width(reportWidth).
			Align(lipgloss.Center)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))
)
