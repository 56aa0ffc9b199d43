package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reactome/releasefetch/internal/config"
	"github.com/reactome/releasefetch/log"
)

var (
	// Global flags
	cfgFile  string
	logLevel string
	username string
	password string
	jsonOut  bool
	debug    bool

	// Resolved by the persistent pre-run
	cfg       *config.Config
	logger    log.Logger = log.Noop()
	zapLogger *zap.Logger
	runID     string
)

var rootCmd = &cobra.Command{
	Use:   "releasefetch",
	Short: "Retrieve the external data files a Reactome release depends on",
	Long: `releasefetch downloads the third-party data files used during a Reactome
release over HTTP(S) or FTP, skipping files whose local copy is still fresh.

Sources are declared in a .properties or .yaml file passed with --config.
Every setting can be overridden through RELEASEFETCH_ environment variables.

Credentials can be provided via the config file, flags or environment variables:
  - RELEASEFETCH_<SOURCE>_USERNAME + RELEASEFETCH_<SOURCE>_PASSWORD: per source
  - RELEASEFETCH_USERNAME + RELEASEFETCH_PASSWORD: any source`,
	SilenceUsage: true,
}

// Execute runs the root command, cancelling it on SIGINT or SIGTERM
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file (.properties or .yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error), overrides log_level")
	rootCmd.PersistentFlags().StringVar(&username, "username", "", "Username for the selected sources")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "Password for the selected sources")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Set up persistent pre-run to load the configuration and configure logging
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		zl, err := newZapLogger(level, debug)
		if err != nil {
			return err
		}
		zapLogger = zl

		runID = uuid.NewString()
		logger = log.With(log.NewZapLogger(zl), "run_id", runID)
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(log.WithContextLogger(ctx, logger))
		return nil
	}

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if zapLogger != nil {
			// stderr does not support fsync on every platform
			_ = zapLogger.Sync()
		}
		return nil
	}
}

// newZapLogger builds a console logger in debug mode and a JSON one otherwise.
// Both write to stderr so the formatted output on stdout stays parseable.
func newZapLogger(level string, debug bool) (*zap.Logger, error) {
	var zc zap.Config
	if debug {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		zc.Level = lvl
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

// getOutputFormat returns "json" if json flag is set, otherwise "human"
func getOutputFormat() string {
	if jsonOut {
		return "json"
	}
	return "human"
}
