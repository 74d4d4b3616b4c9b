// Package corretto parses Amazon Corretto releases. Each feature version
// has its own GitHub repository whose release notes link the artifacts on
// corretto.aws.
package corretto

import (
	"fmt"
	"regexp"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = client.GitHubAPI
	distribution = core.Distribution("corretto")
	owner        = "corretto"
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

var (
	resourceLink = regexp.MustCompile(`https://corretto\.aws/downloads/resources/[\w.+-]+/[\w.+-]+`)

	// amazon-corretto-17.0.6.10.1-linux-x64.tar.gz
	// amazon-corretto-8.362.08.1-windows-x64-jre.zip
	fileParts = regexp.MustCompile(`^amazon-corretto-(\d+(?:\.\d+)+)-(.+)$`)
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

func (a *Adapter) Locator(f core.Filter) string {
	feature := f.Feature()
	if feature == 0 {
		return ""
	}
	return client.GitHubReleases(a.baseURL, owner, fmt.Sprintf("corretto-%d", feature))
}

func (a *Adapter) Parse(p core.Payload, f core.Filter) []*core.Package {
	if p.Empty() {
		return nil
	}
	c := core.NewCollector(distribution, f, a.schedule)
	return core.ParseReleaseBodies(p, c, resourceLink, a.parseLink)
}

func (a *Adapter) parseLink(rel core.Release, l core.Link) *core.Package {
	m := fileParts.FindStringSubmatch(l.Name)
	if m == nil {
		return nil
	}
	dist := core.ParseVersionNumber(m[1])

	pkg := core.NewPackage(distribution, l.Name, l.URL).Classify(m[2])
	pkg.Architecture = core.DefaultMacArchitecture(pkg.Architecture, pkg.OperatingSystem)
	pkg.JavaVersion = javaVersion(dist)
	pkg.DistributionVersion = dist
	pkg.ReleaseStatus = core.ResolveReleaseStatus(core.StatusFromFlag(rel.Prerelease, true))
	pkg.TCKTested = core.VerificationYes
	return pkg
}

// javaVersion maps Corretto's five component version to the runtime
// version. 17.0.6.10.1 is 17.0.6+10; Corretto 8 numbers itself
// 8.<update>.<build>.<revision>, so 8.362.08.1 is 8.0.362+8.
func javaVersion(dist core.VersionNumber) core.VersionNumber {
	if dist.Feature() == 8 {
		return core.NewVersionNumber(8, 0, dist.Interim()).Remap(core.SetBuild(dist.Update()))
	}
	return dist.Remap(core.BuildFromComponent(core.Patch))
}
