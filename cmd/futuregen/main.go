// futuregen generates future/background test wrappers for blocking
// client APIs from a YAML manifest of value kinds and operations.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"futuregen/internal/config"
	"futuregen/internal/descriptor"
	"futuregen/internal/emit"
	"futuregen/internal/watch"
)

var (
	// Global flags
	verbose      bool
	manifestPath string
	outputPath   string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "futuregen",
	Short: "futuregen - future/background wrapper generator for blocking client APIs",
	Long: `futuregen turns a static manifest of value kinds and blocking
operations into a Go source file of future/background pairs: for each
operation it emits a Future<op> constructor that dispatches the real
call to a background goroutine and returns a handle immediately, plus
the tagged Value container the futures carry their heterogeneous
arguments and results in.

The generated code is test support: it lets hand-written tests drive a
synchronous client API concurrently against a controllable fake peer
and block for the result only when they choose to.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// generateCmd runs one full generation pass
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Validate the manifest and write the generated source file",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := config.Load(manifestPath)
		if err != nil {
			return err
		}

		out := outputPath
		if out == "" {
			out = m.ResolveOutput(manifestPath)
		}
		return emit.New(logger).GenerateFile(m, out)
	},
}

// checkCmd validates without emitting anything
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the manifest without writing output",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := config.Load(manifestPath)
		if err != nil {
			return err
		}
		reg, err := m.BuildRegistry()
		if err != nil {
			return err
		}
		if err := descriptor.Validate(reg, m.Descriptors()); err != nil {
			return err
		}

		logger.Info("manifest valid",
			zap.String("manifest", manifestPath),
			zap.Int("kinds", reg.Len()),
			zap.Int("operations", len(m.Operations)))
		return nil
	},
}

// watchCmd regenerates on every manifest save until interrupted
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the manifest and regenerate on change",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := watch.New(logger, manifestPath)
		if err != nil {
			return err
		}
		if err := w.Start(cmd.Context()); err != nil {
			return err
		}
		defer w.Stop()

		logger.Info("watching manifest", zap.String("manifest", manifestPath))

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)
		<-sigCh
		return nil
	},
}

// initCmd writes a starter manifest
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter manifest to get going",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(manifestPath); err == nil {
			return fmt.Errorf("%s already exists, not overwriting", manifestPath)
		}
		if err := config.Default().Save(manifestPath); err != nil {
			return err
		}
		logger.Info("wrote starter manifest", zap.String("manifest", manifestPath))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "futuregen.yaml", "path to the generation manifest")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "override the manifest's output path")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
