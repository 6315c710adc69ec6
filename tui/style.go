package tui

import "github.com/charmbracelet/lipgloss"

var (
	borderASCII = lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	paneStyle       = lipgloss.NewStyle().Border(borderASCII).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	paneActiveStyle = paneStyle.Copy().BorderForeground(lipgloss.Color("33"))

	labelStyle        = lipgloss.NewStyle().Bold(true)
	valueMuted        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedRowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24"))
	doneRowStyle      = valueMuted.Copy().Strikethrough(true)
	activeFilterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)

	statusErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	helpBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236"))

	modalStyle = lipgloss.NewStyle().Border(borderASCII).Padding(1, 2)
)
