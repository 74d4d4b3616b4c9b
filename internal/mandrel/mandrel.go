// Package mandrel parses Mandrel releases from GitHub.
package mandrel

import (
	"regexp"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = client.GitHubAPI
	distribution = core.Distribution("mandrel")
	owner        = "graalvm"
	repo         = "mandrel"
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

// mandrel-java17-linux-amd64-22.3.1.0-Final.tar.gz
var fileParts = regexp.MustCompile(`^mandrel-java(\d+)-([a-z]+)-([a-z0-9]+)-(\d+(?:\.\d+)+)-(Final|[A-Za-z0-9]+)\.(tar\.gz|zip)$`)

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

func (a *Adapter) Locator(core.Filter) string {
	return client.GitHubReleases(a.baseURL, owner, repo)
}

func (a *Adapter) Parse(p core.Payload, f core.Filter) []*core.Package {
	if p.Empty() {
		return nil
	}
	c := core.NewCollector(distribution, f, a.schedule)
	return core.ParseReleases(p, c, a.parseAsset)
}

// parseAsset records only the runtime feature; the Mandrel release number
// is the distribution version. Qualifiers other than Final are early
// access.
func (a *Adapter) parseAsset(rel core.Release, asset core.Link) *core.Package {
	m := fileParts.FindStringSubmatch(asset.Name)
	if m == nil {
		return nil
	}
	java := core.ParseVersionNumber(m[1])

	pkg := core.NewPackage(distribution, asset.Name, asset.URL).Classify(m[2] + "-" + m[3] + "." + m[6])
	pkg.PackageType = core.PackageTypeJDK
	pkg.JavaVersion = java
	pkg.DistributionVersion = core.ParseVersionNumber(m[4])
	pkg.ReleaseStatus = core.ResolveReleaseStatus(
		core.StatusFromFlag(rel.Prerelease || m[5] != "Final", true),
	)
	return pkg
}
