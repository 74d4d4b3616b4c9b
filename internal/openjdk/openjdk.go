// Package openjdk parses the reference builds published on jdk.java.net.
package openjdk

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = "https://jdk.java.net"
	distribution = core.Distribution("openjdk")
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

// downloadFile matches openjdk-17.0.2_linux-x64_bin.tar.gz and
// openjdk-21-ea+35_macos-aarch64_bin.tar.gz plus their checksums.
var downloadFile = regexp.MustCompile(`^openjdk-\d.*_bin\.(tar\.gz|zip)(\.sha256)?$`)

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

// Locator returns the per-feature page for current and upcoming releases
// and the archive page otherwise.
func (a *Adapter) Locator(f core.Filter) string {
	feature := f.Feature()
	if feature > 0 && (f.Latest || a.schedule.IsUpcoming(feature)) {
		return fmt.Sprintf("%s/%d/", a.baseURL, feature)
	}
	return a.baseURL + "/archive/"
}

// Parse reads a jdk.java.net page. Both the archive and the feature pages
// list builds newest first.
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
		core.StatusFromFilename(l.Name),
		core.StatusFromFilename(l.URL),
		core.StatusFromSchedule(a.schedule, version.Feature()),
	)
	return pkg
}

// stripPrefix removes "openjdk-" so that only the version and platform
// remain.
func stripPrefix(name string) string {
	return strings.TrimPrefix(name, "openjdk-")
}
