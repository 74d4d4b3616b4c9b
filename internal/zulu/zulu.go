// Package zulu parses the Azul metadata API for Zulu builds.
package zulu

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = "https://api.azul.com"
	distribution = core.Distribution("zulu")
	pageSize     = 1000
)

func init() {
	core.Register(distribution, DefaultURL, func(baseURL string, s *core.Schedule) core.Adapter {
		return New(baseURL, s)
	})
}

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
	params := map[string]string{
		"os":                 strings.ReplaceAll(string(f.OperatingSystem), "_", "-"),
		"arch":               string(f.Architecture),
		"archive_type":       archiveParam(f.ArchiveType),
		"java_package_type":  string(f.PackageType),
		"release_status":     client.StatusParam(f, "ga", "ea"),
		"availability_types": "CA",
		"page_size":          strconv.Itoa(pageSize),
	}
	if f.Version.HasFeature() {
		params["java_version"] = f.Version.String()
	}
	if f.Latest {
		params["latest"] = "true"
	}
	if f.JavaFX != nil {
		params["javafx_bundled"] = strconv.FormatBool(*f.JavaFX)
	}
	return client.Query(a.baseURL, "/metadata/v1/zulu/packages/", params)
}

func archiveParam(t core.ArchiveType) string {
	return strings.ReplaceAll(string(t), "_", ".")
}

// Parse reads the metadata array. Structured version arrays win over the
// filename when both are present.
func (a *Adapter) Parse(p core.Payload, f core.Filter) []*core.Package {
	if p.Empty() {
		return nil
	}
	c := core.NewCollector(distribution, f, a.schedule)
	for _, item := range p.Items("") {
		pkg := a.parseItem(item)
		if pkg == nil {
			continue
		}
		if f.FeatureMismatch(pkg.JavaVersion) {
			c.Skip(pkg.Filename, core.ReasonFilter)
			continue
		}
		c.Add(pkg)
	}
	return c.Packages()
}

func (a *Adapter) parseItem(item gjson.Result) *core.Package {
	uri := item.Get("download_url").String()
	name := item.Get("name").String()
	if name == "" {
		name = core.FilenameFromURL(uri)
	}
	if name == "" || core.IsNoise(name) {
		return nil
	}

	javaVersion, distVersion := versionsFromName(name)
	if jv := item.Get("java_version"); jv.IsArray() {
		javaVersion = intsVersion(jv)
	}
	if dv := item.Get("distro_version"); dv.IsArray() {
		distVersion = intsVersion(dv)
	}
	if b := item.Get("openjdk_build_number"); b.Exists() {
		javaVersion = javaVersion.Remap(core.SetBuild(int(b.Int())))
	}

	rest := stripPrefix(name)
	pkg := core.NewPackage(distribution, name, uri).Classify(rest)
	pkg.JavaVersion = javaVersion
	pkg.DistributionVersion = distVersion
	pkg.ReleaseStatus = core.ResolveReleaseStatus(
		core.StatusFromValue(item.Get("release_status").String()),
		core.StatusFromFilename(name),
		core.StatusFromSchedule(a.schedule, javaVersion.Feature()),
	)
	if fx := item.Get("javafx_bundled"); fx.Exists() {
		pkg.JavaFXBundled = fx.Bool()
	} else {
		pkg.JavaFXBundled = strings.Contains(name, "-fx-") || strings.Contains(name, "_fx")
	}
	pkg.Latest = item.Get("latest").Bool()
	pkg.Checksum = item.Get("sha256_hash").String()
	if pkg.Checksum != "" {
		pkg.ChecksumType = core.HashSHA256
	}
	pkg.Size = item.Get("size").Int()
	pkg.TCKTested = core.VerificationYes
	return pkg
}

func intsVersion(r gjson.Result) core.VersionNumber {
	var parts []int64
	for _, n := range r.Array() {
		parts = append(parts, n.Int())
	}
	return core.VersionNumberFromInts(parts)
}

var (
	distSegment = regexp.MustCompile(`^zulu(\d+(?:\.\d+)*)`)
	javaSegment = regexp.MustCompile(`-(?:jdk|jre)(\d+(?:\.\d+)*)`)
)

// versionsFromName reads zulu17.40.19-ca-jdk17.0.6-win_x64.zip: the zulu
// segment is Azul's own version, the jdk segment the runtime version.
func versionsFromName(name string) (java, dist core.VersionNumber) {
	if m := distSegment.FindStringSubmatch(name); m != nil {
		dist = core.ParseVersionNumber(m[1])
	}
	if m := javaSegment.FindStringSubmatch(name); m != nil {
		java = core.ParseVersionNumber(m[1])
	}
	return java, dist
}

// stripPrefix drops the zulu version segment so its digits and letters
// cannot be mistaken for platform tokens.
func stripPrefix(name string) string {
	if loc := distSegment.FindStringIndex(name); loc != nil {
		return name[loc[1]:]
	}
	return name
}
