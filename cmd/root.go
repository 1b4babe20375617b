package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"colorant-og/config"
	"colorant-og/logging"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "colorant-og",
	Short: "Social preview images and share pages for the colorant picker",
	Long: `colorant-og serves Open Graph preview images for palettes chosen in the
colorant picker, plus tiny share pages that point link unfurlers at those
images and send browsers on to the picker itself.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded outside production")
}

// loadConfig reads the dotenv file and the environment, then builds the logger
func loadConfig() (*config.Config, *zap.Logger, error) {
	loaded, err := config.LoadDotEnv(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using system environment variables\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}
	if loaded {
		logger.Debug("Loaded environment variables", zap.String("file", envFile))
	}
	return cfg, logger, nil
}
