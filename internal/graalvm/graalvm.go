// Package graalvm parses GraalVM Community Edition releases from GitHub.
package graalvm

import (
	"regexp"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = client.GitHubAPI
	distribution = core.Distribution("graalvm_community")
	owner        = "graalvm"
	repo         = "graalvm-ce-builds"
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

var (
	// graalvm-ce-java17-linux-amd64-22.3.1.tar.gz
	legacyFile = regexp.MustCompile(`^graalvm-ce-(?:complete-)?java(\d+)-([a-z]+)-([a-z0-9]+)-(\d+(?:\.\d+)+)\.(tar\.gz|zip)$`)
	// graalvm-community-jdk-17.0.7_linux-x64_bin.tar.gz
	currentFile = regexp.MustCompile(`^graalvm-community-jdk-([\d.]+(?:\+\d+)?)_([a-z]+)-([a-z0-9]+)_bin\.(tar\.gz|zip)$`)
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

// parseAsset understands both naming schemes. Legacy names carry the
// GraalVM release and only the runtime feature; current names carry the
// full runtime version, which is also the distribution version.
func (a *Adapter) parseAsset(rel core.Release, asset core.Link) *core.Package {
	var java, dist core.VersionNumber
	var platform string
	if m := legacyFile.FindStringSubmatch(asset.Name); m != nil {
		java = core.ParseVersionNumber(m[1])
		dist = core.ParseVersionNumber(m[4])
		platform = m[2] + "-" + m[3] + "." + m[5]
	} else if m := currentFile.FindStringSubmatch(asset.Name); m != nil {
		java = core.ParseVersionNumber(m[1])
		dist = java
		platform = m[2] + "-" + m[3] + "." + m[4]
	} else {
		return nil
	}

	pkg := core.NewPackage(distribution, asset.Name, asset.URL).Classify(platform)
	pkg.PackageType = core.PackageTypeJDK
	pkg.JavaVersion = java
	pkg.DistributionVersion = dist
	pkg.ReleaseStatus = core.ResolveReleaseStatus(
		core.StatusFromFlag(rel.Prerelease, true),
	)
	return pkg
}
