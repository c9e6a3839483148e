package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	flow "github.com/grindlemire/go-flow"
)

// footerLines is the number of rows below the canvas.
const footerLines = 2

func (c *cli) previewCommand() *cobra.Command {
	var cellW, cellH float64

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Interactive terminal preview that relayouts on resize",
		Long:  `Draw the frame of every node as a box in the terminal. The terminal is the container: every resize runs a new layout pass. Tab cycles the selected node.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cellW <= 0 || cellH <= 0 {
				return fmt.Errorf("cell size must be positive, got %vx%v", cellW, cellH)
			}
			doc, err := flow.LoadDocument(args[0])
			if err != nil {
				return err
			}

			p := tea.NewProgram(newPreviewModel(c, doc, cellW, cellH),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().Float64Var(&cellW, "cell-width", 8, "layout units per terminal column")
	cmd.Flags().Float64Var(&cellH, "cell-height", 16, "layout units per terminal row")
	return cmd
}

// previewModel is the bubbletea model for the preview command.
type previewModel struct {
	cli          *cli
	doc          *flow.Document
	cellW, cellH float64

	width, height int
	frames        []flow.FrameRecord
	selected      int
}

func newPreviewModel(c *cli, doc *flow.Document, cellW, cellH float64) previewModel {
	return previewModel{cli: c, doc: doc, cellW: cellW, cellH: cellH}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "j":
			if len(m.frames) > 0 {
				m.selected = (m.selected + 1) % len(m.frames)
			}
		case "shift+tab", "up", "k":
			if len(m.frames) > 0 {
				m.selected = (m.selected + len(m.frames) - 1) % len(m.frames)
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
	}
	return m, nil
}

// relayout lays the document out in the area the terminal leaves for the
// canvas.
func (m *previewModel) relayout() {
	rows := max(m.height-footerLines, 0)
	size := flow.NewSize(float64(m.width)*m.cellW, float64(rows)*m.cellH)
	_, m.frames = m.cli.layout(m.doc, size, true)
	if m.selected >= len(m.frames) {
		m.selected = 0
	}
	m.cli.logger.Debug("preview relayout", "cols", m.width, "rows", rows, "frames", len(m.frames))
}

// draw paints every frame onto a canvas the size of the terminal area.
func (m previewModel) draw() *canvas {
	cv := newCanvas(m.width, max(m.height-footerLines, 0))
	for i, f := range m.frames {
		if r, ok := toCells(f.Rect(), m.cellW, m.cellH); ok {
			cv.drawFrame(r, f.ID, i)
		}
	}
	return cv
}

func (m previewModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.draw().render(m.selected))
	b.WriteString("\n")

	if len(m.frames) > 0 {
		f := m.frames[m.selected]
		b.WriteString(styleTitle.Render(m.doc.Name))
		b.WriteString("  ")
		b.WriteString(styleSelected.Render(f.ID))
		b.WriteString(styleDim.Render(fmt.Sprintf(" %s ", f.Type)))
		b.WriteString(styleNumber.Render(fmt.Sprintf("(%s, %s) %s×%s",
			formatNumber(f.X), formatNumber(f.Y), formatNumber(f.Width), formatNumber(f.Height))))
		if f.Clip {
			b.WriteString(styleClip.Render(" clip"))
		}
	}
	b.WriteString("\n")
	b.WriteString(styleDim.Render("tab next  shift+tab prev  q quit"))
	return b.String()
}
