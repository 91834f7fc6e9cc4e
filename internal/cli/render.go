package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dartwatch/pubgraph/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format   string // "dot" or "svg"
	output   string // output file path (stdout if empty)
	detailed bool   // include source paths in node labels
	sdkRoot  string // override SDK auto-detection
}

// newRenderCmd creates the render command.
// It builds the graph and renders it as Graphviz DOT text or an SVG image.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: "svg"}

	cmd := &cobra.Command{
		Use:   "render [dir]",
		Short: "Render the dependency graph as DOT or SVG",
		Long: `Render the dependency graph of a resolved Dart package tree.

Examples:
  pubgraph render -o deps.svg ./my_app
  pubgraph render --format dot ./my_app`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runRender(c, args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot or svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include source paths in node labels")
	cmd.Flags().StringVar(&opts.sdkRoot, "sdk-root", "", "Dart SDK path for the synthetic $sdk package (auto-detected if empty)")

	return cmd
}

func runRender(c *cobra.Command, args []string, opts *renderOpts) error {
	g, err := buildGraph(c, args, opts.sdkRoot)
	if err != nil {
		return err
	}

	dot := render.ToDOT(g, render.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = render.RenderSVG(dot)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s (want dot or svg)", opts.format)
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess("Rendered graph")
		printFile(opts.output)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
