// Package debian parses the OpenJDK binary packages in the Debian pool.
package debian

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = "https://deb.debian.org/debian/pool/main/o"
	distribution = core.Distribution("debian")
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

var (
	// openjdk-17-jdk_17.0.6+10-1_amd64.deb
	// openjdk-21-jre-headless_21~35ea-1_arm64.deb
	downloadFile = regexp.MustCompile(`^openjdk-\d+-(jdk|jre)(?:-headless|-zero)?_.*\.deb$`)
	fileParts    = regexp.MustCompile(`^openjdk-\d+-((?:jdk|jre)(?:-headless|-zero)?)_([^_]+)_([a-z0-9]+)\.deb$`)
	// 21~35ea-1: upstream 21, build 35, early access.
	eaVersion = regexp.MustCompile(`^(\d+(?:\.\d+)*)~(\d+)ea`)
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

// Locator returns the pool directory of the source package for the
// filter's feature. The pool has no index across features.
func (a *Adapter) Locator(f core.Filter) string {
	feature := f.Feature()
	if feature == 0 {
		return ""
	}
	return fmt.Sprintf("%s/openjdk-%d/", a.baseURL, feature)
}

func (a *Adapter) Parse(p core.Payload, f core.Filter) []*core.Package {
	if p.Empty() {
		return nil
	}
	c := core.NewCollector(distribution, f, a.schedule)
	links := core.HTMLLinks(p.Text(), p.Source, downloadFile)
	return core.ParseLinks(links, c, a.parseLink)
}

// parseLink reads a .deb name. Debian names carry no operating system, so
// the archive fallback supplies linux. The Debian revision after the last
// "-" is dropped from the version.
func (a *Adapter) parseLink(l core.Link) *core.Package {
	m := fileParts.FindStringSubmatch(l.Name)
	if m == nil {
		return nil
	}
	version, ea := parseDebianVersion(m[2])

	pkg := core.NewPackage(distribution, l.Name, l.URL).Classify(m[1] + "_" + m[3] + ".deb")
	pkg.JavaVersion = version
	pkg.DistributionVersion = version
	pkg.ReleaseStatus = core.ResolveReleaseStatus(core.StatusFromFlag(ea, true))
	return pkg
}

func parseDebianVersion(s string) (core.VersionNumber, bool) {
	if m := eaVersion.FindStringSubmatch(s); m != nil {
		build, _ := strconv.Atoi(m[2])
		return core.ParseVersionNumber(m[1]).Remap(core.SetPreRelease("ea"), core.SetBuild(build)), true
	}
	return core.ParseVersionNumber(s), false
}
