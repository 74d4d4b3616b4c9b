package main

import (
	"fmt"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/git-pkgs/jdks/internal/core"
)

func newLocateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate [distribution...]",
		Short: "Print the endpoint each distribution would be queried at",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(v)
			dist, f, err := filterFromFlags(cmd)
			if err != nil {
				return err
			}
			dists := distributionArgs(args, dist)
			check, _ := cmd.Flags().GetBool("check")
			fetcher := cfg.fetcher()

			for _, d := range dists {
				a, err := core.New(d, "", cfg.schedule())
				if err != nil {
					return errors.Wrap(err, "creating adapter")
				}
				url := a.Locator(f)
				if url == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t-\n", d)
					continue
				}
				if !check {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d, url)
					continue
				}
				status := "ok"
				if _, _, err := fetcher.Head(cmd.Context(), url); err != nil {
					status = err.Error()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", d, url, status)
			}
			return nil
		},
	}
	addFilterFlags(cmd)
	cmd.Flags().Bool("check", false, "Send a HEAD request to each endpoint")
	return cmd
}

// distributionArgs prefers explicit arguments, then the PURL's
// distribution, then every registered one.
func distributionArgs(args []string, fromPURL core.Distribution) []core.Distribution {
	if len(args) > 0 {
		out := make([]core.Distribution, len(args))
		for i, a := range args {
			out[i] = core.Distribution(a)
		}
		return out
	}
	if fromPURL != "" {
		return []core.Distribution{fromPURL}
	}
	return core.SupportedDistributions()
}
