package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	flow "github.com/grindlemire/go-flow"
	"github.com/grindlemire/go-flow/internal/debug"
)

// cli holds state shared by all commands.
type cli struct {
	logger     *log.Logger
	cfg        flow.Config
	configPath string
	verbose    bool
}

func newCLI(w io.Writer) *cli {
	return &cli{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           log.InfoLevel,
		}),
		cfg: flow.DefaultConfig(),
	}
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "flow",
		Short:         "Lay out declarative UI documents",
		Long:          `flow measures and positions trees of stacks, overlays, scroll views and leaves, writing a frame onto every node.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+flow.DefaultConfigFile+" when present)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return c.setup()
	}

	root.AddCommand(c.computeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.treeCommand())
	return root
}

// setup loads the config and applies its logging settings. Flags win over
// the config file.
func (c *cli) setup() error {
	cfg, err := flow.LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := log.InfoLevel
	if cfg.Debug.Level != "" {
		if level, err = log.ParseLevel(cfg.Debug.Level); err != nil {
			return fmt.Errorf("config: debug.level: %w", err)
		}
	}
	if c.verbose {
		level = log.DebugLevel
	}
	c.logger.SetLevel(level)

	if cfg.Debug.LogFile != "" {
		if err := debug.Init(cfg.Debug.LogFile); err != nil {
			return err
		}
		c.logger.Debug("engine trace enabled", "file", cfg.Debug.LogFile)
	}
	return nil
}

// engine creates a layout engine for one document.
func (c *cli) engine(extra ...flow.EngineOption) *flow.Engine {
	return flow.NewEngine(append(c.cfg.EngineOptions(), extra...)...)
}

// layout builds doc and lays it out in size, returning the tree and its
// frames.
func (c *cli) layout(doc *flow.Document, size flow.Size, clip bool) (*flow.Element, []flow.FrameRecord) {
	if dups := doc.DuplicateIDs(); len(dups) > 0 {
		c.logger.Warn("duplicate node ids share layout state", "document", doc.Name, "ids", dups)
	}

	root := doc.Build()
	e := c.engine()
	if clip {
		e.ComputeLayoutClipped(root, size)
	} else {
		e.ComputeLayout(root, size)
	}
	return root, flow.CollectFrames(root)
}

// sizeFlags registers --width and --height.
func sizeFlags(cmd *cobra.Command, width, height *float64) {
	cmd.Flags().Float64Var(width, "width", 0, "container width (default: document, then config viewport)")
	cmd.Flags().Float64Var(height, "height", 0, "container height (default: document, then config viewport)")
}

// container resolves the layout container: flags, then the document, then
// the configured viewport.
func (c *cli) container(doc *flow.Document, width, height float64) flow.Size {
	size := doc.Container(c.cfg.ViewportSize())
	if width > 0 {
		size.Width = width
	}
	if height > 0 {
		size.Height = height
	}
	return size
}
