// Package dragonwell parses Alibaba Dragonwell releases from GitHub.
package dragonwell

import (
	"fmt"
	"regexp"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = client.GitHubAPI
	distribution = core.Distribution("dragonwell")
	owner        = "dragonwell-project"
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

var (
	// Alibaba_Dragonwell_Extended_11.0.18.14+9_aarch64_linux.tar.gz
	fileParts = regexp.MustCompile(`^Alibaba_Dragonwell_(?:(?:Standard|Extended|Compact)_)?([\d.]+(?:\+\d+)?)(?:-GA)?_(.+)$`)
	// dragonwell-extended-8.14.15_jdk8u362-ga
	tagJDK8 = regexp.MustCompile(`jdk(8u\d+)(?:-b(\d+))?`)
)

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
	return client.GitHubReleases(a.baseURL, owner, fmt.Sprintf("dragonwell%d", feature))
}

func (a *Adapter) Parse(p core.Payload, f core.Filter) []*core.Package {
	if p.Empty() {
		return nil
	}
	c := core.NewCollector(distribution, f, a.schedule)
	return core.ParseReleases(p, c, a.parseAsset)
}

// parseAsset reads the Dragonwell version, which carries four or five
// components. The runtime version is its first three plus the build;
// for 8 it comes from the release tag instead.
func (a *Adapter) parseAsset(rel core.Release, asset core.Link) *core.Package {
	m := fileParts.FindStringSubmatch(asset.Name)
	if m == nil {
		return nil
	}
	dist := core.ParseVersionNumber(m[1])
	java := dist.Remap(core.TruncateAt(core.Patch))
	if dist.Feature() == 8 {
		java = core.VersionNumber{}
		if t := tagJDK8.FindStringSubmatch(rel.Tag); t != nil {
			java = core.ParseVersionNumber(t[1])
			if t[2] != "" {
				java = core.ParseVersionNumber(t[1] + "-b" + t[2])
			}
		}
	}

	pkg := core.NewPackage(distribution, asset.Name, asset.URL).Classify(m[2])
	pkg.JavaVersion = java
	pkg.DistributionVersion = dist
	pkg.ReleaseStatus = core.ResolveReleaseStatus(
		core.StatusFromFlag(rel.Prerelease, true),
		core.StatusFromFilename(rel.Tag),
	)
	return pkg
}
