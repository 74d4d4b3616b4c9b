// Package openlogic parses the OpenLogic OpenJDK download listing.
package openlogic

import (
	"regexp"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = "https://www.openlogic.com/openjdk-downloads"
	distribution = core.Distribution("openlogic")
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

var (
	downloadFile = regexp.MustCompile(`^openlogic-openjdk-.+\.(tar\.gz|zip|msi|pkg|dmg|deb|rpm)(\.sha256(\.txt)?|\.sig)?$`)

	// openlogic-openjdk-jre-17.0.6+10-linux-x64.tar.gz
	// openlogic-openjdk-8u362-b09-windows-x64.msi
	fileParts = regexp.MustCompile(`^openlogic-openjdk-(?:(jre|jdk)-)?(\d[^-]*(?:-b\d+)?)-(.+)$`)
)

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

// parseLink handles both version styles OpenLogic uses: 17.0.6+10 and,
// for 8, 8u362-b09. A missing jdk/jre marker means a JDK.
func (a *Adapter) parseLink(l core.Link) *core.Package {
	m := fileParts.FindStringSubmatch(l.Name)
	if m == nil {
		return nil
	}
	version := core.ParseVersionNumber(m[2])

	pkg := core.NewPackage(distribution, l.Name, l.URL).Classify(m[3])
	pkg.PackageType = core.PackageTypeJDK
	if m[1] == "jre" {
		pkg.PackageType = core.PackageTypeJRE
	}
	pkg.JavaVersion = version
	pkg.DistributionVersion = version
	pkg.ReleaseStatus = core.ResolveReleaseStatus(core.StatusFromFilename(m[2]))
	pkg.TCKTested = core.VerificationYes
	return pkg
}
