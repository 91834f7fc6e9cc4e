package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dartwatch/pubgraph/pkg/buildinfo"
)

// Execute runs the pubgraph CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "pubgraph",
		Short:        "pubgraph inspects a Dart package tree and builds its dependency graph",
		Long:         `pubgraph reads a resolved Dart package tree (pubspec.yaml, pubspec.lock, .packages) and builds the full dependency graph: the root package, its transitive dependencies, and each dependency's source classification. The graph tells watchers and build orchestrators which packages exist, where their sources live, and how they should be monitored.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGraphCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}
