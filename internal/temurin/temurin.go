// Package temurin parses Eclipse Temurin releases from the Adoptium API.
package temurin

import (
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = "https://api.adoptium.net"
	distribution = core.Distribution("temurin")
	pageSize     = 50
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

// Locator queries the feature_releases endpoint. Adoptium has no listing
// across features, so an unconstrained filter has no locator.
func (a *Adapter) Locator(f core.Filter) string {
	feature := f.Feature()
	if feature == 0 {
		return ""
	}
	status := client.StatusParam(f, "ga", "ea")
	if status == "" {
		status = "ga"
		if a.schedule.IsUpcoming(feature) {
			status = "ea"
		}
	}
	params := map[string]string{
		"architecture": adoptiumArch[f.Architecture],
		"os":           adoptiumOS[f.OperatingSystem],
		"image_type":   string(f.PackageType),
		"jvm_impl":     "hotspot",
		"vendor":       "eclipse",
		"sort_order":   "DESC",
		"page_size":    strconv.Itoa(pageSize),
	}
	return client.Query(a.baseURL, fmt.Sprintf("/v3/assets/feature_releases/%d/%s", feature, status), params)
}

var adoptiumArch = map[core.Architecture]string{
	core.ArchX64:     "x64",
	core.ArchX86:     "x32",
	core.ArchAArch64: "aarch64",
	core.ArchARM:     "arm",
	core.ArchPPC64LE: "ppc64le",
	core.ArchPPC64:   "ppc64",
	core.ArchS390X:   "s390x",
	core.ArchSPARCV9: "sparcv9",
	core.ArchRISCV64: "riscv64",
}

var adoptiumOS = map[core.OperatingSystem]string{
	core.OSLinux:     "linux",
	core.OSLinuxMusl: "alpine-linux",
	core.OSMacOS:     "mac",
	core.OSWindows:   "windows",
	core.OSSolaris:   "solaris",
	core.OSAIX:       "aix",
}

// Parse reads an array of releases, each carrying version_data and a list
// of binaries. A binary yields a record for its archive and another for
// its installer when present.
func (a *Adapter) Parse(p core.Payload, f core.Filter) []*core.Package {
	if p.Empty() {
		return nil
	}
	c := core.NewCollector(distribution, f, a.schedule)
	for _, release := range p.Items("") {
		version := releaseVersion(release.Get("version_data"))
		if !version.HasFeature() {
			c.Skip(release.Get("release_name").String(), core.ReasonVersion)
			continue
		}
		if f.FeatureMismatch(version) {
			c.Skip(release.Get("release_name").String(), core.ReasonFilter)
			continue
		}
		status := core.ResolveReleaseStatus(
			core.StatusFromValue(release.Get("release_type").String()),
			core.StatusFromFilename(release.Get("release_name").String()),
			core.StatusFromSchedule(a.schedule, version.Feature()),
		)
		release.Get("binaries").ForEach(func(_, binary gjson.Result) bool {
			for _, key := range []string{"package", "installer"} {
				if pkg := a.parseBinary(binary, binary.Get(key), version, status); pkg != nil {
					c.Add(pkg)
				}
			}
			return true
		})
	}
	return c.Packages()
}

func (a *Adapter) parseBinary(binary, file gjson.Result, version core.VersionNumber, status core.ReleaseStatus) *core.Package {
	name := file.Get("name").String()
	link := file.Get("link").String()
	if name == "" || link == "" || core.IsNoise(name) {
		return nil
	}
	imageType, ok := core.Match(binary.Get("image_type").String(), core.PackageTypeTable)
	if !ok {
		return nil
	}

	pkg := core.NewPackage(distribution, name, link)
	pkg.JavaVersion = version
	pkg.DistributionVersion = version
	pkg.ReleaseStatus = status
	pkg.PackageType = imageType
	pkg.Architecture, _ = core.Match(binary.Get("architecture").String(), core.ArchitectureTable)
	pkg.OperatingSystem, _ = core.Resolve(binary.Get("os").String(), core.OperatingSystemTable)
	pkg.ArchiveType, _ = core.ResolveArchiveType(name)
	pkg.FPU = core.ResolveFPU(name, pkg.Architecture)
	pkg.Size = file.Get("size").Int()
	pkg.Checksum = file.Get("checksum").String()
	if pkg.Checksum != "" {
		pkg.ChecksumType = core.HashSHA256
	}
	pkg.ChecksumURI = file.Get("checksum_link").String()
	if sig := file.Get("signature_link").String(); sig != "" {
		pkg.SignatureURI = sig
		pkg.SignatureType, _ = core.ResolveSignatureType(sig)
		if pkg.SignatureType == core.SignatureNone {
			pkg.SignatureType = core.SignaturePGP
		}
	}
	pkg.TCKTested = core.VerificationYes
	pkg.TCKCertURI = "https://adoptium.net/temurin/tck-affidavit/"
	return pkg
}

// releaseVersion reads version_data. Temurin reports security as the
// third component and the OpenJDK build separately.
func releaseVersion(vd gjson.Result) core.VersionNumber {
	if !vd.Get("major").Exists() {
		return core.ParseVersionNumber(vd.Get("openjdk_version").String())
	}
	v := core.NewVersionNumber(
		int(vd.Get("major").Int()),
		int(vd.Get("minor").Int()),
		int(vd.Get("security").Int()),
	)
	if patch := vd.Get("patch"); patch.Exists() && patch.Int() > 0 {
		v = v.Remap(core.SetPatch(int(patch.Int())))
	}
	if build := vd.Get("build"); build.Exists() {
		v = v.Remap(core.SetBuild(int(build.Int())))
	}
	if pre := vd.Get("pre").String(); pre != "" {
		v = v.Remap(core.SetPreRelease(pre))
	}
	return v
}
