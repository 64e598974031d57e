package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RishaanDevz/MacosUseSDK/internal/ax"
	"github.com/RishaanDevz/MacosUseSDK/internal/browser"
	"github.com/RishaanDevz/MacosUseSDK/internal/config"
	"github.com/RishaanDevz/MacosUseSDK/internal/inject"
	"github.com/RishaanDevz/MacosUseSDK/internal/permission"
	"github.com/RishaanDevz/MacosUseSDK/internal/provider"
	"github.com/RishaanDevz/MacosUseSDK/internal/traversal"
)

// version is stamped at build time via -ldflags.
var version = "dev"

var (
	visibleOnly bool
	outputPath  string
	bundleID    string
	cdpEndpoint string
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	setupLogging(cfg.Logger)

	rootCmd := &cobra.Command{
		Use:   "traversal",
		Short: "Accessibility-tree traversal and extraction",
	}

	traverseCmd := &cobra.Command{
		Use:   "traverse <pid-or-identifier>",
		Short: "Traverse the target application's UI tree and print JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraverse(cmd.Context(), cfg, args[0])
		},
	}
	traverseCmd.Flags().BoolVar(&visibleOnly, "visible-only", false, "Only include elements with resolvable geometry")
	traverseCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write JSON to file instead of stdout")
	traverseCmd.Flags().StringVar(&bundleID, "bundle-id", "com.google.Chrome", "Bundle identifier of the target application")
	traverseCmd.Flags().StringVar(&cdpEndpoint, "cdp", "", "CDP endpoint of the browser to attach to (overrides env)")
	rootCmd.AddCommand(traverseCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("traversal", version)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runTraverse(ctx context.Context, cfg *config.Cfg, identifier string) error {
	target := resolveTarget(identifier, bundleID)

	endpoint := cfg.Inject.CDPEndpoint
	if strings.TrimSpace(cdpEndpoint) != "" {
		endpoint = cdpEndpoint
	}
	injector, err := inject.NewPlaywrightInjector(endpoint, log.With().Str("comp", "inject").Logger())
	if err != nil {
		return fmt.Errorf("attach to browser at %s: %w", endpoint, err)
	}
	defer injector.Close()

	prov, err := provider.Capture(ctx, injector, target)
	if err != nil {
		return fmt.Errorf("%w: %v", ax.ErrTargetNotFound, err)
	}

	extractor := browser.NewExtractor(prov, injector, browser.Config{
		ExtraBundleIDs: cfg.Browser.ExtraBundleIDs,
		ExtraKeywords:  cfg.Browser.ExtraActionKeywords,
	}, log.With().Str("comp", "browser").Logger())

	engine := traversal.NewEngine(
		prov,
		permission.NewEnvGate(nil),
		extractor,
		log.With().Str("comp", "traversal").Logger(),
	)

	resp, err := engine.Traverse(ctx, target, prov.Root(), traversal.Options{VisibleOnly: visibleOnly})
	if err != nil {
		log.Error().Err(err).Str("target", identifier).Msg("traversal failed")
		return err
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, out, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.Info().Str("path", outputPath).Msg("traversal data saved")
		return nil
	}
	fmt.Println(string(out))
	return nil
}

// resolveTarget interprets a numeric identifier as a PID, a dotted one as a
// bundle id, and anything else as the application name. PID and bundle-id
// targets leave the name empty; the platform binding resolves the display
// name, not this CLI.
func resolveTarget(identifier, bundle string) ax.Target {
	identifier = strings.TrimSpace(identifier)
	if pid, err := strconv.Atoi(identifier); err == nil {
		return ax.Target{PID: pid, BundleID: bundle}
	}
	if strings.Count(identifier, ".") >= 2 {
		// Looks like a bundle id, e.g. com.apple.Safari.
		return ax.Target{BundleID: identifier}
	}
	return ax.Target{Name: identifier, BundleID: bundle}
}

func setupLogging(cfg config.Logger) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
