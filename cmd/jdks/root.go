package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	_ "github.com/git-pkgs/jdks/all"
)

const cliName = "jdks"

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("JDKS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   cliName,
		Short: "Normalise JDK package metadata from vendor endpoints",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, v)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Config file (yaml, json or toml)")
	flags.String("env-file", ".env", "Dotenv file loaded before reading the environment")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("redis-url", "", "Redis URL for the known-package store; memory when empty")
	flags.String("redis-channel", "", "Redis pub/sub channel for new packages")
	flags.String("github-token", "", "GitHub token for release API requests")
	flags.Int("concurrency", 8, "Distributions queried in parallel")
	flags.Duration("timeout", time.Minute, "Per-request timeout")
	flags.Int("next-ea", 0, "Lowest feature version without a GA release; 0 keeps the built-in schedule")
	if err := v.BindPFlags(flags); err != nil {
		slog.Error("binding flags", "error", err)
	}

	cmd.AddCommand(newDistributionsCmd())
	cmd.AddCommand(newLocateCmd(v))
	cmd.AddCommand(newParseCmd(v))
	cmd.AddCommand(newDiscoverCmd(v))

	return cmd
}

func setup(cmd *cobra.Command, v *viper.Viper) error {
	if envFile := v.GetString("env-file"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "loading %s", envFile)
		}
	}
	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", cfgFile)
		}
	}

	cfg := loadConfig(v)
	initLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	return nil
}

func initLogger(w io.Writer, level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	_, isFile := w.(*os.File)
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.TimeOnly,
		NoColor:    !isFile,
	})))
}
