// Package sapmachine parses SapMachine releases from GitHub.
package sapmachine

import (
	"regexp"
	"strings"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = client.GitHubAPI
	distribution = core.Distribution("sap_machine")
	owner        = "SAP"
	repo         = "SapMachine"
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

// sapmachine-jdk-17.0.6_linux-x64_bin.tar.gz
var fileParts = regexp.MustCompile(`^sapmachine-(jdk|jre)-([^_]+)_(.+)$`)

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

// Locator returns the single release listing; all features share one
// repository.
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

func (a *Adapter) parseAsset(rel core.Release, asset core.Link) *core.Package {
	m := fileParts.FindStringSubmatch(asset.Name)
	if m == nil {
		return nil
	}
	version := core.ParseVersionNumber(normalizeVersion(m[2]))

	pkg := core.NewPackage(distribution, asset.Name, asset.URL).Classify(m[1] + "_" + m[3])
	pkg.JavaVersion = version
	pkg.DistributionVersion = version
	pkg.ReleaseStatus = core.ResolveReleaseStatus(
		core.StatusFromFlag(rel.Prerelease, true),
		core.StatusFromFilename(m[2]),
	)
	pkg.TCKTested = core.VerificationYes
	return pkg
}

// normalizeVersion rewrites the EA build separator: 21-ea.35 becomes
// 21-ea+35.
func normalizeVersion(v string) string {
	return strings.Replace(v, "-ea.", "-ea+", 1)
}
