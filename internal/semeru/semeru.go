// Package semeru parses IBM Semeru Runtimes releases from GitHub. The open
// and certified editions share a file layout and register separately.
package semeru

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL = client.GitHubAPI
	owner      = "ibmruntimes"

	Open      = core.Distribution("semeru")
	Certified = core.Distribution("semeru_certified")
)

func init() {
	core.Register(Open, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s, Open)
	})
	core.Register(Certified, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s, Certified)
	})
}

// ibm-semeru-open-jdk_x64_linux_17.0.6_10_openj9-0.36.0.tar.gz
// ibm-semeru-certified-jdk_ppc64_aix_17.0.6.0.tar.gz
var fileParts = regexp.MustCompile(`^ibm-semeru-(open|certified)-(jdk|jre)_([a-z0-9]+)_([a-z]+)_([^_]+?)(?:_(\d+))?(?:_openj9-([\d.]+))?\.([a-z.]+)$`)

type Adapter struct {
	baseURL      string
	schedule     *core.Schedule
	distribution core.Distribution
}

func New(baseURL string, s *core.Schedule, d core.Distribution) *Adapter {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if s == nil {
		s = core.DefaultSchedule()
	}
	if d == "" {
		d = Open
	}
	return &Adapter{baseURL: client.Trim(baseURL), schedule: s, distribution: d}
}

func (a *Adapter) Distribution() core.Distribution {
	return a.distribution
}

// Locator returns the per-feature binaries repository. There is one
// repository per feature, so an unconstrained filter has no locator.
func (a *Adapter) Locator(f core.Filter) string {
	feature := f.Feature()
	if feature == 0 {
		return ""
	}
	repo := fmt.Sprintf("semeru%d-binaries", feature)
	if a.distribution == Certified {
		repo = fmt.Sprintf("semeru%d-certified-binaries", feature)
	}
	return client.GitHubReleases(a.baseURL, owner, repo)
}

func (a *Adapter) Parse(p core.Payload, f core.Filter) []*core.Package {
	if p.Empty() {
		return nil
	}
	c := core.NewCollector(a.distribution, f, a.schedule)
	return core.ParseReleases(p, c, a.parseAsset)
}

func (a *Adapter) parseAsset(rel core.Release, asset core.Link) *core.Package {
	m := fileParts.FindStringSubmatch(asset.Name)
	if m == nil {
		return nil
	}
	if (m[1] == "certified") != (a.distribution == Certified) {
		return nil
	}
	version := parseVersion(m[5], m[6])

	pkg := core.NewPackage(a.distribution, asset.Name, asset.URL).Classify(strings.Join([]string{m[2], m[3], m[4], "." + m[8]}, "_"))
	pkg.JavaVersion = version
	pkg.DistributionVersion = version
	if m[7] != "" {
		pkg.DistributionVersion = core.ParseVersionNumber(m[7])
	}
	pkg.ReleaseStatus = core.ResolveReleaseStatus(
		core.StatusFromFlag(rel.Prerelease, true),
		core.StatusFromFilename(rel.Tag),
	)
	if a.distribution == Certified {
		pkg.TCKTested = core.VerificationYes
		pkg.FreeUseInProduction = false
	}
	return pkg
}

// parseVersion joins the version and build fields: 17.0.6 and 10 give
// 17.0.6+10, 8u362b09 is read in its legacy form.
func parseVersion(version, build string) core.VersionNumber {
	if build != "" {
		version += "+" + build
	}
	return core.ParseVersionNumber(version)
}
