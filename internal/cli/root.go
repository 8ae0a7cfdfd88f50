// Package cli wires the unionfind packages into a cobra command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/unionfind/internal/config"
	"github.com/katalvlaran/unionfind/internal/logger"
)

// app carries the per-invocation state shared by subcommands.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *zap.Logger
}

// NewRootCommand builds the root command with its connect, grid and mst subcommands.
func NewRootCommand(version string) *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "unionfind",
		Short:         "Answer dynamic connectivity questions with a disjoint-set forest",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.log.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .unionfind.yaml in . or $HOME)")
	pf.Bool("debug", false, "log every pair at debug level")
	pf.String("balance", config.BalanceNone, "union strategy: none or size")
	pf.String("format", config.FormatText, "output format: text or table")
	for _, key := range []string{"debug", "balance", "format"} {
		_ = a.v.BindPFlag(key, pf.Lookup(key))
	}

	rootCmd.AddCommand(newConnectCommand(a), newGridCommand(a), newMSTCommand(a))

	return rootCmd
}

// init reads the config file and environment, then builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		a.v.SetConfigName(".unionfind")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		// It's fine if no config file is found; we use defaults.
		_ = a.v.ReadInConfig()
	}
	config.BindEnv(a.v)

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logger.NewLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.log = log

	return nil
}

// openInput returns the named file, or the command's stdin for "" and "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}
