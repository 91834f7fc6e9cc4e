package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dartwatch/pubgraph/pkg/pkggraph"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	jsonOut bool   // emit the machine-readable JSON document instead of the dump
	output  string // output file path (stdout if empty)
	sdkRoot string // override SDK auto-detection
}

// newGraphCmd creates the graph command.
// It builds the dependency graph of the package tree at the given directory
// (default: current directory) and prints the human-readable dump, or the
// JSON document with --json.
func newGraphCmd() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [dir]",
		Short: "Build the dependency graph of a resolved package tree",
		Long: `Build the dependency graph of a resolved Dart package tree.

The directory must contain pubspec.yaml, pubspec.lock and a generated
.packages index (run "pub get" first). The default output is a human-readable
listing; use --json for a machine-readable document.

Examples:
  pubgraph graph                # current directory
  pubgraph graph ./my_app       # explicit root
  pubgraph graph --json -o deps.json ./my_app`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runGraph(c, args, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "emit JSON instead of the human-readable dump")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.sdkRoot, "sdk-root", "", "Dart SDK path for the synthetic $sdk package (auto-detected if empty)")

	return cmd
}

func runGraph(c *cobra.Command, args []string, opts *graphOpts) error {
	logger := loggerFromContext(c.Context())

	g, err := buildGraph(c, args, opts.sdkRoot)
	if err != nil {
		return err
	}

	if opts.jsonOut {
		out, err := openOutput(opts.output)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := pkggraph.WriteJSON(g, out); err != nil {
			return err
		}
		if opts.output != "" {
			printSuccess("Wrote graph")
			printFile(opts.output)
		}
		return nil
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(g.Dump()), 0o644); err != nil {
			return err
		}
		logger.Infof("Wrote graph to %s", opts.output)
		return nil
	}

	fmt.Println(styleTitle.Render(g.Root.Name))
	printStats(g.Len(), edgeCount(g))
	fmt.Print(g.Dump())
	return nil
}

// buildGraph resolves the root directory, loads the optional config, and
// builds the graph. Shared by the graph and render commands.
func buildGraph(c *cobra.Command, args []string, sdkFlag string) (*pkggraph.PackageGraph, error) {
	logger := loggerFromContext(c.Context())

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	cfg, err := loadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", configFile, err)
	}
	if sdkFlag != "" {
		cfg.SDKRoot = sdkFlag
	}
	sdkRoot := resolveSDKRoot(cfg)
	if sdkRoot == "" {
		logger.Warn("Dart SDK not found; the $sdk package will have no path")
	}
	logger.Debugf("Building graph for %s (sdk: %s)", dir, sdkRoot)

	prog := newProgress(logger)
	g, err := pkggraph.BuildFromPath(dir, pkggraph.Options{SDKRoot: sdkRoot})
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Built graph of %d packages", g.Len()))
	return g, nil
}

func edgeCount(g *pkggraph.PackageGraph) int {
	total := 0
	for _, n := range g.Packages() {
		total += len(n.Dependencies)
	}
	return total
}
