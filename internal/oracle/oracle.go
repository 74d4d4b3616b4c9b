// Package oracle parses the Oracle JDK download pages.
package oracle

import (
	"regexp"
	"strings"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = "https://www.oracle.com/java/technologies/downloads"
	distribution = core.Distribution("oracle")

	// nftcFeature is the first feature released under the No-Fee Terms
	// and Conditions licence.
	nftcFeature = 17
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

var downloadFile = regexp.MustCompile(`^jdk-\d[^_]*_[a-z]+-[a-z0-9_]+_bin\.(tar\.gz|zip|msi|exe|dmg|deb|rpm)(\.sha256)?$`)

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

// Locator returns the current downloads page, or the archive page when an
// older feature is requested.
func (a *Adapter) Locator(f core.Filter) string {
	if f.Feature() > 0 && !f.Latest {
		return a.baseURL + "/archive/"
	}
	return a.baseURL + "/"
}

// Parse reads an Oracle downloads page. Tabs are ordered by feature,
// newest first.
func (a *Adapter) Parse(p core.Payload, f core.Filter) []*core.Package {
	if p.Empty() {
		return nil
	}
	c := core.NewCollector(distribution, f, a.schedule).NewestFirst()
	links := core.HTMLLinks(p.Text(), p.Source, downloadFile)
	return core.ParseLinks(links, c, a.parseLink)
}

func (a *Adapter) parseLink(l core.Link) *core.Package {
	rest := stripPrefix(l.Name)
	version := core.ParseVersionNumber(rest)

	pkg := core.NewPackage(distribution, l.Name, l.URL).Classify(rest)
	pkg.JavaVersion = version
	pkg.DistributionVersion = version
	pkg.Architecture = core.DefaultMacArchitecture(pkg.Architecture, pkg.OperatingSystem)
	pkg.ReleaseStatus = core.ResolveReleaseStatus(
		core.StatusFromFilename(rest),
		core.StatusFromSchedule(a.schedule, version.Feature()),
	)
	pkg.FreeUseInProduction = version.Feature() >= nftcFeature
	pkg.TCKTested = core.VerificationYes
	return pkg
}

func stripPrefix(name string) string {
	return strings.TrimPrefix(name, "jdk-")
}
