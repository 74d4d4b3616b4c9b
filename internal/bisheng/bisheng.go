// Package bisheng parses the Huawei BiSheng JDK mirror listing.
package bisheng

import (
	"regexp"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = "https://mirrors.huaweicloud.com/kunpeng/archive/compiler/bisheng_jdk"
	distribution = core.Distribution("bisheng")
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

var (
	downloadFile = regexp.MustCompile(`^bisheng-(jdk|jre)-.+-linux-.+\.tar\.gz(\.sha256)?$`)

	// bisheng-jdk-17.0.6-linux-aarch64.tar.gz
	// bisheng-jre-8u362-linux-x64.tar.gz
	fileParts = regexp.MustCompile(`^bisheng-(jdk|jre)-([^-]+(?:-b\d+)?)-(linux-.+)$`)
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
	base := client.Trim(baseURL)
	return &Adapter{
		baseURL:  base,
		schedule: s,
		urls:     client.Fixed(base + "/"),
	}
}

func (a *Adapter) Distribution() core.Distribution {
	return distribution
}

func (a *Adapter) Locator(f core.Filter) string {
	return a.urls.Locator(f)
}

// Parse reads the mirror's directory listing. Links are relative, so the
// payload source must be the listing URL.
func (a *Adapter) Parse(p core.Payload, f core.Filter) []*core.Package {
	if p.Empty() {
		return nil
	}
	c := core.NewCollector(distribution, f, a.schedule)
	links := core.HTMLLinks(p.Text(), p.Source, downloadFile)
	return core.ParseLinks(links, c, a.parseLink)
}

func (a *Adapter) parseLink(l core.Link) *core.Package {
	m := fileParts.FindStringSubmatch(l.Name)
	if m == nil {
		return nil
	}
	version := core.ParseVersionNumber(m[2])

	pkg := core.NewPackage(distribution, l.Name, l.URL).Classify(m[3])
	pkg.PackageType = core.ResolvePackageType(m[1])
	pkg.JavaVersion = version
	pkg.DistributionVersion = version
	pkg.ReleaseStatus = core.ResolveReleaseStatus(
		core.StatusFromFilename(m[2]),
		core.StatusFromSchedule(a.schedule, version.Feature()),
	)
	return pkg
}
