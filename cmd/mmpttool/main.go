// Command mmpttool is a point-operation and benchmark harness for the
// mmpt trie: build a trie from a set of key/value pairs given on the
// command line, then run one operation against it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logLevel string
	logger   *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mmpttool",
		Short:         "Build and query an in-memory Modified Merkle Patricia Trie",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogger()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "info", "one of debug, info, warn, error")
	if err := viper.BindPFlag("log-level", flags.Lookup("log-level")); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("MMPT")
	viper.AutomaticEnv()

	root.AddCommand(
		newInsertCmd(),
		newGetCmd(),
		newRemoveCmd(),
		newHashCmd(),
		newAuditCmd(),
		newBenchCmd(),
	)
	return root
}

func initLogger() error {
	var zl zapcore.Level
	switch viper.GetString("log-level") {
	case "debug":
		zl = zapcore.DebugLevel
	case "warn":
		zl = zapcore.WarnLevel
	case "error":
		zl = zapcore.ErrorLevel
	default:
		zl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zl)
	built, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("mmpttool: building logger: %w", err)
	}
	logger = built
	return nil
}
