// Package microsoft parses the Microsoft Build of OpenJDK download page.
package microsoft

import (
	"regexp"
	"strings"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = "https://learn.microsoft.com/en-us/java/openjdk/download"
	distribution = core.Distribution("microsoft")
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

var downloadFile = regexp.MustCompile(`^microsoft-jdk-\d.*\.(tar\.gz|zip|msi|pkg|deb|rpm)(\.sha256sum\.txt)?$`)

type Adapter struct {
	baseURL  string
	schedule *core.Schedule
	urls     *client.BaseLocator
}

func New(baseURL string, s *core.Schedule) *Adapter {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if s == nil {
		s = core.DefaultSchedule()
	}
	return &Adapter{
		baseURL:  client.Trim(baseURL),
		schedule: s,
		urls:     client.Fixed(client.Trim(baseURL)),
	}
}

func (a *Adapter) Distribution() core.Distribution {
	return distribution
}

// Locator returns the single download page; every supported feature is
// listed there.
func (a *Adapter) Locator(f core.Filter) string {
	return a.urls.Locator(f)
}

func (a *Adapter) Parse(p core.Payload, f core.Filter) []*core.Package {
	if p.Empty() {
		return nil
	}
	c := core.NewCollector(distribution, f, a.schedule)
	links := core.HTMLLinks(p.Text(), p.Source, downloadFile)
	return core.ParseLinks(links, c, a.parseLink)
}

func (a *Adapter) parseLink(l core.Link) *core.Package {
	rest := stripPrefix(l.Name)
	version := core.ParseVersionNumber(rest)

	pkg := core.NewPackage(distribution, l.Name, l.URL).Classify(rest)
	pkg.JavaVersion = version
	pkg.DistributionVersion = version
	pkg.ReleaseStatus = core.ResolveReleaseStatus(
		core.StatusFromFilename(rest),
		core.StatusFromSchedule(a.schedule, version.Feature()),
	)
	pkg.TCKTested = core.VerificationYes
	return pkg
}

// stripPrefix removes "microsoft-jdk-"; what remains looks like
// 17.0.6-linux-x64.tar.gz.
func stripPrefix(name string) string {
	return strings.TrimPrefix(name, "microsoft-jdk-")
}
