// Package trava parses Trava OpenJDK (DCEVM) releases from GitHub.
package trava

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = client.GitHubAPI
	distribution = core.Distribution("trava")
	owner        = "TravaOpenJDK"
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

// java11-openjdk-dcevm-linux-amd64.tar.gz
// java8-openjdk-dcevm-osx.tar.gz
var fileParts = regexp.MustCompile(`^java(\d+)-openjdk-dcevm-(.+)$`)

type Adapter struct {
	baseURL  string
	schedule *core.Schedule
}

func New(baseURL string, s *core.Schedule) *Adapter {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if s == nil {
		s = core.DefaultSchedule()
	}
	return &Adapter{baseURL: client.Trim(baseURL), schedule: s}
}

func (a *Adapter) Distribution() core.Distribution {
	return distribution
}

func (a *Adapter) Locator(f core.Filter) string {
	feature := f.Feature()
	if feature == 0 {
		return ""
	}
	return client.GitHubReleases(a.baseURL, owner, fmt.Sprintf("trava-jdk-%d-dcevm", feature))
}

func (a *Adapter) Parse(p core.Payload, f core.Filter) []*core.Package {
	if p.Empty() {
		return nil
	}
	c := core.NewCollector(distribution, f, a.schedule)
	return core.ParseReleases(p, c, a.parseAsset)
}

// parseAsset takes the version from the release tag (dcevm-11.0.15+1 or
// dcevm8u282b08); asset names only carry the feature. Trava only ever
// shipped x64 builds, and the older ones do not say so.
func (a *Adapter) parseAsset(rel core.Release, asset core.Link) *core.Package {
	m := fileParts.FindStringSubmatch(asset.Name)
	if m == nil {
		return nil
	}
	version := core.ParseVersionNumber(strings.TrimPrefix(strings.TrimPrefix(rel.Tag, "dcevm"), "-"))
	if !version.HasFeature() || fmt.Sprint(version.Feature()) != m[1] {
		return nil
	}

	pkg := core.NewPackage(distribution, asset.Name, asset.URL).Classify(m[2])
	if pkg.Architecture == core.ArchNone {
		pkg.Architecture = core.ArchX64
	}
	pkg.PackageType = core.PackageTypeJDK
	pkg.JavaVersion = version
	pkg.DistributionVersion = version
	pkg.ReleaseStatus = core.ResolveReleaseStatus(core.StatusFromFlag(rel.Prerelease, true))
	return pkg
}
