package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	flow "github.com/grindlemire/go-flow"
)

// documentFrames is the layout result for one input file.
type documentFrames struct {
	Document string             `json:"document"`
	Width    float64            `json:"width"`
	Height   float64            `json:"height"`
	Frames   []flow.FrameRecord `json:"frames"`
}

func (c *cli) computeCommand() *cobra.Command {
	var (
		width, height float64
		format        string
		clip          bool
	)

	cmd := &cobra.Command{
		Use:   "compute FILE...",
		Short: "Lay out documents and print every frame",
		Long:  `Lay out each TOML or JSON document with its own engine, concurrently, and print the frame of every positioned node.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("unknown format %q (want table or json)", format)
			}
			results, err := c.computeAll(cmd, args, width, height, clip)
			if err != nil {
				return err
			}
			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			return writeTables(cmd.OutOrStdout(), results)
		},
	}

	sizeFlags(cmd, &width, &height)
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or json")
	cmd.Flags().BoolVar(&clip, "clip", false, "include clip flags")
	return cmd
}

// computeAll lays out every file concurrently. Each document gets its own
// engine; results keep argument order.
func (c *cli) computeAll(cmd *cobra.Command, paths []string, width, height float64, clip bool) ([]documentFrames, error) {
	results := make([]documentFrames, len(paths))
	g, ctx := errgroup.WithContext(cmd.Context())

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := flow.LoadDocument(path)
			if err != nil {
				return err
			}
			size := c.container(doc, width, height)
			_, frames := c.layout(doc, size, clip)
			c.logger.Debug("laid out", "document", doc.Name, "nodes", doc.Count(), "frames", len(frames))
			results[i] = documentFrames{
				Document: doc.Name,
				Width:    size.Width,
				Height:   size.Height,
				Frames:   frames,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeJSON(w io.Writer, results []documentFrames) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeTables(w io.Writer, results []documentFrames) error {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		title := fmt.Sprintf("%s  %s×%s", r.Document, formatNumber(r.Width), formatNumber(r.Height))
		fmt.Fprintln(w, styleTitle.Render(title))
		fmt.Fprintln(w, framesTable(r.Frames).Render())
	}
	return nil
}

func framesTable(frames []flow.FrameRecord) *table.Table {
	rows := make([][]string, len(frames))
	for i, f := range frames {
		clip := ""
		if f.Clip {
			clip = "clip"
		}
		rows[i] = []string{
			strings.Repeat("  ", f.Depth) + f.ID,
			f.Type,
			formatNumber(f.X),
			formatNumber(f.Y),
			formatNumber(f.Width),
			formatNumber(f.Height),
			clip,
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Node", "Type", "X", "Y", "Width", "Height", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col >= 2 && col <= 5:
				return styleNumber
			case col == 6:
				return styleClip
			default:
				return styleValue
			}
		})
}

// formatNumber prints at most two decimals and drops trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
