package main

import (
	"os"
	"strings"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/git-pkgs/jdks/internal/core"
)

func newParseCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <distribution> <file|url>",
		Short: "Parse a saved or live vendor payload into packages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(v)
			_, f, err := filterFromFlags(cmd)
			if err != nil {
				return err
			}

			a, err := core.New(core.Distribution(args[0]), "", cfg.schedule())
			if err != nil {
				return errors.Wrap(err, "creating adapter")
			}

			var p core.Payload
			if src := args[1]; strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
				if p, err = cfg.fetcher().Payload(cmd.Context(), src); err != nil {
					return errors.Wrap(err, "fetching payload")
				}
			} else {
				body, err := os.ReadFile(src)
				if err != nil {
					return errors.Wrap(err, "reading payload")
				}
				p = core.NewPayload(body, src)
			}

			format, _ := cmd.Flags().GetString("format")
			return writePackages(cmd.OutOrStdout(), format, a.Parse(p, f))
		},
	}
	addFilterFlags(cmd)
	addFormatFlag(cmd)
	return cmd
}
