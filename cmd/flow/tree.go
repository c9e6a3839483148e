package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	flow "github.com/grindlemire/go-flow"
)

func (c *cli) treeCommand() *cobra.Command {
	var (
		width, height float64
		output        string
		dotOnly       bool
	)

	cmd := &cobra.Command{
		Use:   "tree FILE",
		Short: "Render the node hierarchy as a Graphviz diagram",
		Long:  `Lay out a document and render its node hierarchy, labelled with each node's frame, as SVG (or DOT with --dot).`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := flow.LoadDocument(args[0])
			if err != nil {
				return err
			}
			root, _ := c.layout(doc, c.container(doc, width, height), true)

			out := []byte(toDOT(root))
			if !dotOnly {
				if out, err = renderSVG(cmd.Context(), out); err != nil {
					return err
				}
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			c.logger.Info("wrote tree", "file", output, "bytes", len(out))
			return nil
		},
	}

	sizeFlags(cmd, &width, &height)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&dotOnly, "dot", false, "emit DOT source instead of SVG")
	return cmd
}

// toDOT converts an element tree to Graphviz DOT. Nodes are keyed by
// preorder index since ids may repeat.
func toDOT(root *flow.Element) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	index := map[*flow.Element]int{}
	var edges []string
	root.Walk(func(e *flow.Element) bool {
		i := len(index)
		index[e] = i
		attrs := []string{fmt.Sprintf("label=%q", nodeLabel(e))}
		switch {
		case !e.Positioned():
			attrs = append(attrs, `style="rounded,filled,dashed"`, "fillcolor=lightgrey")
		case e.Clipped():
			attrs = append(attrs, "color=darkgreen")
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, strings.Join(attrs, ", "))
		if p := e.Parent(); p != nil {
			if pi, ok := index[p]; ok {
				edges = append(edges, fmt.Sprintf("  n%d -> n%d;\n", pi, i))
			}
		}
		return true
	})

	buf.WriteString("\n")
	for _, edge := range edges {
		buf.WriteString(edge)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(e *flow.Element) string {
	label := e.ID() + "\n" + e.Type()
	if !e.Positioned() {
		return label
	}
	f := e.Frame()
	return fmt.Sprintf("%s\n(%s, %s) %s×%s", label,
		formatNumber(f.X), formatNumber(f.Y), formatNumber(f.Width), formatNumber(f.Height))
}

// renderSVG renders DOT source to SVG using Graphviz.
func renderSVG(ctx context.Context, dot []byte) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
