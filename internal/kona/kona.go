// Package kona parses Tencent Kona releases from GitHub. Each feature
// version lives in its own repository.
package kona

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = client.GitHubAPI
	distribution = core.Distribution("kona")
	owner        = "Tencent"
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

var (
	// TencentKona-17.0.6.b1-jdk_linux-x86_64.tar.gz
	// TencentKona8.0.13-362_jdk_linux-x86_64_8u362.tar.gz
	fileParts = regexp.MustCompile(`^TencentKona-?(\d+(?:\.\d+)*)(?:[.-]b?(\d+))?[-_](jdk|jre)_(.+)$`)
	jdk8      = regexp.MustCompile(`8u\d+(?:-?b\d+)?`)
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
	return client.GitHubReleases(a.baseURL, owner, fmt.Sprintf("TencentKona-%d", feature))
}

func (a *Adapter) Parse(p core.Payload, f core.Filter) []*core.Package {
	if p.Empty() {
		return nil
	}
	c := core.NewCollector(distribution, f, a.schedule)
	return core.ParseReleases(p, c, a.parseAsset)
}

// parseAsset reads Kona's own version and build. From 11 on the Kona
// version is the runtime version; Kona 8 numbers itself 8.0.x and names
// the runtime update at the end of the filename.
func (a *Adapter) parseAsset(rel core.Release, asset core.Link) *core.Package {
	m := fileParts.FindStringSubmatch(asset.Name)
	if m == nil {
		return nil
	}
	kona := core.ParseVersionNumber(m[1])
	dist := kona
	if m[2] != "" {
		n, _ := strconv.Atoi(m[2])
		dist = kona.Remap(core.SetBuild(n))
	}

	java := kona.Remap(core.ClearBuild())
	if kona.Feature() == 8 {
		java = core.ParseVersionNumber(jdk8.FindString(m[4]))
	}

	pkg := core.NewPackage(distribution, asset.Name, asset.URL).Classify(m[4])
	pkg.PackageType = core.ResolvePackageType(m[3])
	pkg.JavaVersion = java
	pkg.DistributionVersion = dist
	pkg.ReleaseStatus = core.ResolveReleaseStatus(core.StatusFromFlag(rel.Prerelease, true))
	return pkg
}
