// Package redhat parses the Red Hat build of OpenJDK download page.
package redhat

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = "https://developers.redhat.com/products/openjdk/download"
	distribution = core.Distribution("redhat")
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

var (
	downloadFile = regexp.MustCompile(`^java-[\d.]+-openjdk.*\.(zip|msi|tar\.xz)$`)

	// java-17-openjdk-17.0.6.0.10-1.win.x86_64.zip
	// java-17-openjdk-17.0.6.0.10-1.portable.jdk.el.x86_64.tar.xz
	modern = regexp.MustCompile(`^java-(\d+)-openjdk(?:-portable)?-(\d+(?:\.\d+)+)-\d+\.(.+)$`)
	// java-1.8.0-openjdk-1.8.0.362-1.b09.win.x86_64.zip
	// java-1.8.0-openjdk-portable-1.8.0.362.b09-1.portable.jre.el.x86_64.tar.xz
	jdk8 = regexp.MustCompile(`^java-1\.8\.0-openjdk(?:-portable)?-1\.8\.0\.(\d+)(?:\.b(\d+))?-\d+\.(?:b(\d+)\.)?(.+)$`)
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

// parseLink reads Red Hat's RPM-style names. The "win" and "el" markers
// select the platform; the portable tarballs say jdk or jre explicitly.
func (a *Adapter) parseLink(l core.Link) *core.Package {
	dist, java, rest, ok := parseName(l.Name)
	if !ok {
		return nil
	}

	pkg := core.NewPackage(distribution, l.Name, l.URL).Classify(rest)
	if strings.Contains(rest, ".el.") || strings.HasPrefix(rest, "el.") {
		pkg.OperatingSystem = core.OSLinux
	}
	pkg.JavaVersion = java
	pkg.DistributionVersion = dist
	pkg.TCKTested = core.VerificationYes
	return pkg
}

// parseName splits a filename into the Red Hat version, the runtime
// version and the platform remainder. Red Hat appends its own revision to
// the upstream version: 17.0.6.0.10 is 17.0.6+10 and 11.0.18.10 is
// 11.0.18+10.
func parseName(name string) (dist, java core.VersionNumber, rest string, ok bool) {
	if m := jdk8.FindStringSubmatch(name); m != nil {
		update, _ := strconv.Atoi(m[1])
		java = core.NewVersionNumber(8, 0, update)
		build := m[2]
		if build == "" {
			build = m[3]
		}
		if build != "" {
			n, _ := strconv.Atoi(build)
			java = java.Remap(core.SetBuild(n))
		}
		return java, java, m[4], true
	}
	if m := modern.FindStringSubmatch(name); m != nil {
		dist = core.ParseVersionNumber(m[2])
		switch {
		case dist.Len() >= 5:
			java = dist.Remap(core.BuildFromComponent(core.Fifth), core.TruncateAt(core.Patch))
		case dist.Len() == 4:
			java = dist.Remap(core.BuildFromComponent(core.Patch))
		default:
			java = dist
		}
		return dist, java, m[3], true
	}
	return core.VersionNumber{}, core.VersionNumber{}, "", false
}
