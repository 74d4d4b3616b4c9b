package main

import (
	"log/slog"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/git-pkgs/jdks/cache"
	"github.com/git-pkgs/jdks/discover"
)

func newDiscoverCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover [distribution...]",
		Short: "Query distributions and report packages not seen before",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(v)
			dist, f, err := filterFromFlags(cmd)
			if err != nil {
				return err
			}

			store, notifier := cache.Open(cmd.Context(), cfg.cacheConfig())
			defer func() { _ = store.Close() }()

			fetcher := cfg.fetcher()
			d := discover.New(fetcher,
				discover.WithStore(store),
				discover.WithNotifier(notifier),
				discover.WithSchedule(cfg.schedule()),
				discover.WithDistributions(distributionArgs(args, dist)...),
				discover.WithConcurrency(cfg.Concurrency),
			)

			results, err := d.Run(cmd.Context(), f)
			if err != nil {
				return errors.Wrap(err, "discovery interrupted")
			}

			failed := 0
			for _, r := range results {
				switch {
				case r.Skipped():
					slog.Debug("skipped", "distribution", r.Distribution)
				case r.Err != nil:
					failed++
					slog.Error("discovery failed", "distribution", r.Distribution, "error", r.Err)
				default:
					slog.Info("discovered", "distribution", r.Distribution,
						"packages", len(r.Packages), "new", len(r.New), "duration", r.Duration)
				}
			}
			if hosts := fetcher.OpenHosts(); len(hosts) > 0 {
				slog.Warn("circuit open", "hosts", hosts)
			}

			format, _ := cmd.Flags().GetString("format")
			if err := writePackages(cmd.OutOrStdout(), format, discover.NewPackages(results)); err != nil {
				return err
			}
			if failed == len(results) && failed > 0 {
				return errors.Errorf("all %d distributions failed", failed)
			}
			return nil
		},
	}
	addFilterFlags(cmd)
	addFormatFlag(cmd)
	return cmd
}
