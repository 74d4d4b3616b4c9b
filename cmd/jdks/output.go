package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"

	"github.com/git-pkgs/jdks/internal/core"
)

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "o", "text", "Output format (text, json or purl)")
}

func writePackages(w io.Writer, format string, pkgs []*core.Package) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if pkgs == nil {
			pkgs = []*core.Package{}
		}
		return errors.Trace(enc.Encode(pkgs))
	case "purl":
		for _, p := range pkgs {
			fmt.Fprintln(w, p.PURL())
		}
		return nil
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, p := range pkgs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				p.Distribution, p.JavaVersion, p.OperatingSystem, p.Architecture,
				p.ArchiveType, p.PackageType, p.ReleaseStatus, p.Filename)
		}
		return tw.Flush()
	default:
		return errors.Errorf("unknown format %q", format)
	}
}
