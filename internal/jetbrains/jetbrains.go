// Package jetbrains parses JetBrains Runtime releases. Artifacts are not
// uploaded to GitHub; each release body links them on JetBrains' CDN.
package jetbrains

import (
	"regexp"
	"strings"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = client.GitHubAPI
	distribution = core.Distribution("jetbrains")
	owner        = "JetBrains"
	repo         = "JetBrainsRuntime"
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

var (
	cdnLink = regexp.MustCompile(`https://cache-redirector\.jetbrains\.com/intellij-jbr/[A-Za-z0-9_.+-]+`)

	// jbrsdk_jcef-17.0.6-osx-aarch64-b829.5.tar.gz
	// jbr-11_0_16-windows-x64-b2043.64.zip
	fileParts = regexp.MustCompile(`^(jbrsdk|jbr)(?:_([a-z]+))?-(\d+(?:[._]\d+)*)-([a-z]+)-([a-z0-9]+)-b(\d+(?:\.\d+)*)\.(tar\.gz|zip|pkg|msi)$`)
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
	return core.ParseReleaseBodies(p, c, cdnLink, a.parseLink)
}

// parseLink reads one CDN link. Only jbrsdk images carry the compiler;
// every other flavour (jbr, jbr_jcef, jbr_dcevm) is a runtime. The
// b<build> suffix is JetBrains' own build and becomes the distribution
// version.
func (a *Adapter) parseLink(rel core.Release, l core.Link) *core.Package {
	m := fileParts.FindStringSubmatch(l.Name)
	if m == nil {
		return nil
	}

	pkg := core.NewPackage(distribution, l.Name, l.URL).Classify(m[4] + "-" + m[5] + "." + m[7])
	pkg.PackageType = core.PackageTypeJRE
	if m[1] == "jbrsdk" {
		pkg.PackageType = core.PackageTypeJDK
	}
	pkg.JavaVersion = core.ParseVersionNumber(strings.ReplaceAll(m[3], "_", "."))
	pkg.DistributionVersion = core.ParseVersionNumber(m[6])
	pkg.JavaFXBundled = false
	pkg.ReleaseStatus = core.ResolveReleaseStatus(core.StatusFromFlag(rel.Prerelease, true))
	return pkg
}
