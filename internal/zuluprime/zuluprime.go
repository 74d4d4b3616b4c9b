// Package zuluprime parses the Azul Platform Prime (Zing) download listing.
package zuluprime

import (
	"regexp"
	"strconv"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = "https://cdn.azul.com/zing-zvm"
	distribution = core.Distribution("zulu_prime")
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

// zing22.12.0.0-3-jdk17.0.6-linux_x64.tar.gz
var (
	downloadFile = regexp.MustCompile(`^zing\d[\w.-]*\.(tar\.gz|deb|rpm|zip)(\.sha256)?$`)
	fileParts    = regexp.MustCompile(`^zing(\d+(?:\.\d+)*)(?:-(\d+))?-(?:(?:ca|ea)-)?(jdk|jre)(\d+(?:\.\d+)*)(-ea)?(.*)$`)
)

type Adapter struct {
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
	return &Adapter{schedule: s, urls: client.Fixed(client.Trim(baseURL) + "/")}
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

// parseLink splits the Zing version (with its package revision as build)
// from the runtime version.
func (a *Adapter) parseLink(l core.Link) *core.Package {
	m := fileParts.FindStringSubmatch(l.Name)
	if m == nil {
		return nil
	}
	dist := core.ParseVersionNumber(m[1])
	if m[2] != "" {
		rev, _ := strconv.Atoi(m[2])
		dist = dist.Remap(core.SetBuild(rev))
	}
	java := core.ParseVersionNumber(m[4])

	pkg := core.NewPackage(distribution, l.Name, l.URL).Classify(m[3] + m[6])
	pkg.JavaVersion = java
	pkg.DistributionVersion = dist
	pkg.Architecture = core.DefaultMacArchitecture(pkg.Architecture, pkg.OperatingSystem)
	status := core.StatusNone
	if m[5] != "" {
		status = core.StatusEA
	}
	pkg.ReleaseStatus = core.ResolveReleaseStatus(
		core.StatusFromValue(string(status)),
		core.StatusFromSchedule(a.schedule, java.Feature()),
	)
	pkg.FreeUseInProduction = false
	return pkg
}
