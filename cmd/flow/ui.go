package main

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary
	colorGreen = lipgloss.Color("35")  // Green - clipped nodes
	colorAmber = lipgloss.Color("220") // Amber - selection
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - borders
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader   = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
	styleBorder   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue    = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber   = lipgloss.NewStyle().Foreground(colorCyan)
	styleClip     = lipgloss.NewStyle().Foreground(colorGreen)
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorAmber)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
)
