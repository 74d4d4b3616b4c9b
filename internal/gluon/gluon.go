// Package gluon parses Gluon's GraalVM builds from GitHub.
package gluon

import (
	"regexp"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = client.GitHubAPI
	distribution = core.Distribution("gluon_graalvm")
	owner        = "gluonhq"
	repo         = "graal"
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

// graalvm-svm-java17-linux-gluon-22.1.0.1-Final.zip
// graalvm-svm-java17-darwin-m1-gluon-22.1.0.1-Final.zip
// graalvm-java23-linux-amd64-gluon-23+25.1-dev.tar.gz
var fileParts = regexp.MustCompile(`^graalvm-(?:svm-)?java(\d+)-([a-z]+)(?:-([a-z0-9]+))?-gluon-([\d.+]+)-(Final|[A-Za-z0-9]+)\.(tar\.gz|zip)$`)

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

// parseAsset applies Gluon's naming: early builds name no architecture
// and were x64 only, and "m1" stands for aarch64.
func (a *Adapter) parseAsset(rel core.Release, asset core.Link) *core.Package {
	m := fileParts.FindStringSubmatch(asset.Name)
	if m == nil {
		return nil
	}
	pkg := core.NewPackage(distribution, asset.Name, asset.URL).Classify(m[2] + "-" + m[3] + "." + m[6])
	switch m[3] {
	case "":
		pkg.Architecture = core.ArchX64
	case "m1":
		pkg.Architecture = core.ArchAArch64
	}
	pkg.PackageType = core.PackageTypeJDK
	pkg.JavaVersion = core.ParseVersionNumber(m[1])
	pkg.DistributionVersion = core.ParseVersionNumber(m[4])
	pkg.ReleaseStatus = core.ResolveReleaseStatus(
		core.StatusFromFlag(rel.Prerelease || m[5] != "Final", true),
	)
	return pkg
}
