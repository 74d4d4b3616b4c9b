// Package liberica parses BellSoft Liberica releases from the BellSoft API.
package liberica

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/git-pkgs/jdks/client"
	"github.com/git-pkgs/jdks/internal/core"
)

const (
	DefaultURL   = "https://api.bell-sw.com"
	distribution = core.Distribution("liberica")
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
		"os":           strings.ReplaceAll(string(f.OperatingSystem), "_", "-"),
		"bitness":      string(f.Bitness),
		"package-type": strings.ReplaceAll(string(f.ArchiveType), "_", "."),
		"bundle-type":  bundleParam(f),
		"release-type": client.StatusParam(f, "ga", "ea"),
	}
	if arch, bits := libericaArch(f.Architecture); arch != "" {
		params["arch"] = arch
		params["bitness"] = bits
	}
	if n := f.Feature(); n > 0 {
		params["version-feature"] = strconv.Itoa(n)
	}
	if f.Latest {
		params["version-modifier"] = "latest"
	}
	return client.Query(a.baseURL, "/v1/liberica/releases", params)
}

func bundleParam(f core.Filter) string {
	bundle := string(f.PackageType)
	if bundle != "" && f.JavaFX != nil && *f.JavaFX {
		bundle += "-full"
	}
	return bundle
}

// libericaArch splits a canonical architecture into BellSoft's family and
// bitness pair.
func libericaArch(a core.Architecture) (string, string) {
	switch a {
	case core.ArchX64:
		return "x86", "64"
	case core.ArchX86:
		return "x86", "32"
	case core.ArchAArch64:
		return "arm", "64"
	case core.ArchARM:
		return "arm", "32"
	case core.ArchPPC64LE:
		return "ppc", "64"
	case core.ArchSPARCV9:
		return "sparc", "64"
	case core.ArchRISCV64:
		return "riscv", "64"
	}
	return "", ""
}

// canonicalArch reverses libericaArch. The enum values are matched
// exactly, never by substring.
func canonicalArch(arch string, bitness int64) (core.Architecture, bool) {
	switch strings.ToLower(arch) {
	case "x86":
		if bitness == 64 {
			return core.ArchX64, true
		}
		return core.ArchX86, true
	case "arm":
		if bitness == 64 {
			return core.ArchAArch64, true
		}
		return core.ArchARM, true
	case "ppc":
		if bitness == 64 {
			return core.ArchPPC64LE, true
		}
		return core.ArchPPC, true
	case "sparc":
		if bitness == 64 {
			return core.ArchSPARCV9, true
		}
		return core.ArchSPARC, true
	case "riscv":
		return core.ArchRISCV64, true
	}
	return core.Match(arch, core.ArchitectureTable)
}

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
	uri := item.Get("downloadUrl").String()
	name := item.Get("filename").String()
	if name == "" {
		name = core.FilenameFromURL(uri)
	}
	if name == "" || core.IsNoise(name) {
		return nil
	}

	version := itemVersion(item)
	pkg := core.NewPackage(distribution, name, uri)
	pkg.JavaVersion = version
	pkg.DistributionVersion = version
	pkg.Architecture, _ = canonicalArch(item.Get("architecture").String(), item.Get("bitness").Int())
	pkg.OperatingSystem, _ = core.Match(item.Get("os").String(), core.OperatingSystemTable)
	pkg.ArchiveType, _ = core.Match(item.Get("packageType").String(), core.ArchiveTypeTable)
	if pkg.ArchiveType == core.ArchiveNone {
		pkg.ArchiveType, _ = core.ResolveArchiveType(name)
	}
	pkg.FPU = core.ResolveFPU(name, pkg.Architecture)

	bundle := item.Get("bundleType").String()
	pkg.PackageType = core.ResolvePackageType(bundle)
	pkg.JavaFXBundled = item.Get("FX").Bool() || strings.HasSuffix(bundle, "-full")

	ga := item.Get("GA")
	pkg.ReleaseStatus = core.ResolveReleaseStatus(
		core.StatusFromFlag(!ga.Bool(), ga.Exists()),
		core.StatusFromFilename(name),
		core.StatusFromSchedule(a.schedule, version.Feature()),
	)
	if item.Get("TCK").Bool() {
		pkg.TCKTested = core.VerificationYes
	}
	pkg.Latest = item.Get("latestInFeatureVersion").Bool()
	pkg.Size = item.Get("size").Int()
	if sha1 := item.Get("sha1").String(); sha1 != "" {
		pkg.Checksum = sha1
		pkg.ChecksumType = core.HashSHA1
	}
	return pkg
}

// itemVersion prefers the structured fields; BellSoft renders 8 as
// "8u362+9" in the version string.
func itemVersion(item gjson.Result) core.VersionNumber {
	if !item.Get("featureVersion").Exists() {
		return core.ParseVersionNumber(item.Get("version").String())
	}
	v := core.NewVersionNumber(
		int(item.Get("featureVersion").Int()),
		int(item.Get("interimVersion").Int()),
		int(item.Get("updateVersion").Int()),
	)
	if patch := item.Get("patchVersion").Int(); patch > 0 {
		v = v.Remap(core.SetPatch(int(patch)))
	}
	if build := item.Get("buildVersion"); build.Exists() {
		v = v.Remap(core.SetBuild(int(build.Int())))
	}
	return v
}
