package main

import (
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"

	"github.com/git-pkgs/jdks/internal/core"
)

func addFilterFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("purl", "", "Package URL selecting distribution and filter, e.g. pkg:generic/temurin@21?os=linux")
	f.String("version", "", "Java version or feature number")
	f.Bool("latest", false, "Only the feature of --version")
	f.String("os", "", "Operating system")
	f.String("arch", "", "Architecture")
	f.String("archive", "", "Archive type")
	f.String("type", "", "Package type (jdk or jre)")
	f.String("status", "", "Release status (ga or ea)")
}

// filterFromFlags builds the filter. A --purl sets the starting point and
// explicit flags override its qualifiers.
func filterFromFlags(cmd *cobra.Command) (core.Distribution, core.Filter, error) {
	flags := cmd.Flags()

	var dist core.Distribution
	var f core.Filter
	if p, _ := flags.GetString("purl"); p != "" {
		var err error
		dist, f, err = core.FilterFromPURL(p)
		if err != nil {
			return "", f, errors.Wrapf(err, "parsing purl %q", p)
		}
	}

	if v, _ := flags.GetString("version"); v != "" {
		f.Version = core.ParseVersionNumber(v)
		if f.Version.IsZero() {
			return "", f, errors.Errorf("unparseable version %q", v)
		}
	}
	if flags.Changed("latest") {
		f.Latest, _ = flags.GetBool("latest")
	}

	var err error
	if f.OperatingSystem, err = matchFlag(cmd, "os", core.OperatingSystemTable, f.OperatingSystem); err != nil {
		return "", f, err
	}
	if f.Architecture, err = matchFlag(cmd, "arch", core.ArchitectureTable, f.Architecture); err != nil {
		return "", f, err
	}
	if f.ArchiveType, err = matchFlag(cmd, "archive", core.ArchiveTypeTable, f.ArchiveType); err != nil {
		return "", f, err
	}
	if f.PackageType, err = matchFlag(cmd, "type", core.PackageTypeTable, f.PackageType); err != nil {
		return "", f, err
	}
	if f.ReleaseStatus, err = matchFlag(cmd, "status", core.ReleaseStatusTable, f.ReleaseStatus); err != nil {
		return "", f, err
	}
	return dist, f, nil
}

func matchFlag[T ~string](cmd *cobra.Command, name string, table core.Table[T], current T) (T, error) {
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		return current, nil
	}
	if t, ok := core.Match(v, table); ok {
		return t, nil
	}
	return current, errors.Errorf("unknown --%s value %q", name, v)
}
