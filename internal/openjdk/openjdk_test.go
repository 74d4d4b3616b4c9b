package openjdk

import (
	"testing"

	"github.com/git-pkgs/jdks/internal/core"
)

const archivePage = `<html><body>
<table class="builds">
<tr><th>21-ea+35</th></tr>
<tr><td>Linux/x64</td><td><a href="https://download.java.net/java/early_access/jdk21/35/GPL/openjdk-21-ea+35_linux-x64_bin.tar.gz">tar.gz</a></td></tr>
<tr><th>17.0.2 (build 17.0.2+8)</th></tr>
<tr><td>Linux/AArch64</td><td><a href="https://download.java.net/java/GA/jdk17.0.2/dfd4a8d0985749f896bed50d7138ee7f/8/GPL/openjdk-17.0.2_linux-aarch64_bin.tar.gz">tar.gz</a></td></tr>
<tr><td>Linux/x64</td><td><a href="https://download.java.net/java/GA/jdk17.0.2/dfd4a8d0985749f896bed50d7138ee7f/8/GPL/openjdk-17.0.2_linux-x64_bin.tar.gz">tar.gz</a>
<a href="https://download.java.net/java/GA/jdk17.0.2/dfd4a8d0985749f896bed50d7138ee7f/8/GPL/openjdk-17.0.2_linux-x64_bin.tar.gz.sha256">sha256</a></td></tr>
<tr><td>macOS/x64</td><td><a href="https://download.java.net/java/GA/jdk17.0.2/dfd4a8d0985749f896bed50d7138ee7f/8/GPL/openjdk-17.0.2_macos-x64_bin.tar.gz">tar.gz</a></td></tr>
<tr><td>Windows/x64</td><td><a href="https://download.java.net/java/GA/jdk17.0.2/dfd4a8d0985749f896bed50d7138ee7f/8/GPL/openjdk-17.0.2_windows-x64_bin.zip">zip</a></td></tr>
<tr><th>11.0.2 (build 11.0.2+9)</th></tr>
<tr><td>Linux/x64</td><td><a href="https://download.java.net/java/GA/jdk11/9/GPL/openjdk-11.0.2_linux-x64_bin.tar.gz">tar.gz</a></td></tr>
<tr><td>macOS</td><td><a href="https://download.java.net/java/GA/jdk11/9/GPL/openjdk-11.0.2_osx_bin.tar.gz">tar.gz</a></td></tr>
<tr><td>Unknown</td><td><a href="https://download.java.net/java/GA/jdk11/9/GPL/openjdk-11.0.2_solaris_bin.tar.gz">tar.gz</a></td></tr>
<tr><th>9.0.4</th></tr>
<tr><td>Linux/x64</td><td><a href="https://download.java.net/java/GA/jdk9/9.0.4/binaries/openjdk-9.0.4_linux-x64_bin.tar.gz">tar.gz</a></td></tr>
</table>
<a href="/archive/">Archive</a>
</body></html>`

func parse(t *testing.T, f core.Filter) []*core.Package {
	t.Helper()
	a := New("", core.NewSchedule(21))
	return a.Parse(core.NewPayload([]byte(archivePage), "https://jdk.java.net/archive/"), f)
}

func find(pkgs []*core.Package, filename string) *core.Package {
	for _, p := range pkgs {
		if p.Filename == filename {
			return p
		}
	}
	return nil
}

func TestParse(t *testing.T) {
	pkgs := parse(t, core.Filter{})

	p := find(pkgs, "openjdk-17.0.2_linux-x64_bin.tar.gz")
	if p == nil {
		t.Fatal("openjdk-17.0.2_linux-x64_bin.tar.gz not emitted")
	}
	if got := p.JavaVersion.String(); got != "17.0.2" {
		t.Errorf("JavaVersion = %q, want %q", got, "17.0.2")
	}
	if p.OperatingSystem != core.OSLinux {
		t.Errorf("OperatingSystem = %q, want %q", p.OperatingSystem, core.OSLinux)
	}
	if p.Architecture != core.ArchX64 {
		t.Errorf("Architecture = %q, want %q", p.Architecture, core.ArchX64)
	}
	if p.ArchiveType != core.ArchiveTarGz {
		t.Errorf("ArchiveType = %q, want %q", p.ArchiveType, core.ArchiveTarGz)
	}
	if p.PackageType != core.PackageTypeJDK {
		t.Errorf("PackageType = %q, want %q", p.PackageType, core.PackageTypeJDK)
	}
	if p.ReleaseStatus != core.StatusGA {
		t.Errorf("ReleaseStatus = %q, want %q", p.ReleaseStatus, core.StatusGA)
	}
	if p.TermOfSupport != core.TermLTS {
		t.Errorf("TermOfSupport = %q, want %q", p.TermOfSupport, core.TermLTS)
	}
	if p.Bitness != core.Bits64 {
		t.Errorf("Bitness = %q, want %q", p.Bitness, core.Bits64)
	}
	if p.LibCType != core.LibCGlibc {
		t.Errorf("LibCType = %q, want %q", p.LibCType, core.LibCGlibc)
	}
	if p.MajorVersion != 17 {
		t.Errorf("MajorVersion = %d, want 17", p.MajorVersion)
	}
	if p.ChecksumURI == "" || p.ChecksumType != core.HashSHA256 {
		t.Errorf("checksum = %q/%q, want sha256 sibling", p.ChecksumURI, p.ChecksumType)
	}

	ea := find(pkgs, "openjdk-21-ea+35_linux-x64_bin.tar.gz")
	if ea == nil {
		t.Fatal("early access build not emitted")
	}
	if ea.ReleaseStatus != core.StatusEA {
		t.Errorf("ReleaseStatus = %q, want %q", ea.ReleaseStatus, core.StatusEA)
	}
	if b, ok := ea.JavaVersion.Build(); !ok || b != 35 {
		t.Errorf("Build = %d, %v, want 35", b, ok)
	}

	mac := find(pkgs, "openjdk-11.0.2_osx_bin.tar.gz")
	if mac == nil {
		t.Fatal("macOS build without architecture not emitted")
	}
	if mac.Architecture != core.ArchX64 {
		t.Errorf("macOS default Architecture = %q, want %q", mac.Architecture, core.ArchX64)
	}

	if find(pkgs, "openjdk-11.0.2_solaris_bin.tar.gz") != nil {
		t.Error("build without architecture should be skipped")
	}
	if find(pkgs, "openjdk-17.0.2_linux-x64_bin.tar.gz.sha256") != nil {
		t.Error("checksum file emitted as a package")
	}
}

func TestParseLatestStopsBelowFeature(t *testing.T) {
	f := core.Filter{Version: core.NewVersionNumber(17), Latest: true}
	pkgs := parse(t, f)

	if len(pkgs) != 4 {
		t.Fatalf("got %d packages, want 4", len(pkgs))
	}
	for _, p := range pkgs {
		if p.MajorVersion != 17 {
			t.Errorf("%s has feature %d, want 17", p.Filename, p.MajorVersion)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	a := New("", nil)
	if pkgs := a.Parse(core.NewPayload(nil, ""), core.Filter{}); len(pkgs) != 0 {
		t.Errorf("got %d packages from empty payload, want 0", len(pkgs))
	}
}

func TestLocator(t *testing.T) {
	a := New("https://jdk.java.net/", core.NewSchedule(26))

	tests := []struct {
		filter core.Filter
		want   string
	}{
		{core.Filter{}, "https://jdk.java.net/archive/"},
		{core.Filter{Version: core.NewVersionNumber(17)}, "https://jdk.java.net/archive/"},
		{core.Filter{Version: core.NewVersionNumber(25), Latest: true}, "https://jdk.java.net/25/"},
		{core.Filter{Version: core.NewVersionNumber(26)}, "https://jdk.java.net/26/"},
	}
	for _, tt := range tests {
		if got := a.Locator(tt.filter); got != tt.want {
			t.Errorf("Locator(%v) = %q, want %q", tt.filter.Version, got, tt.want)
		}
	}
}

func TestStripPrefix(t *testing.T) {
	if got := stripPrefix("openjdk-17.0.2_linux-x64_bin.tar.gz"); got != "17.0.2_linux-x64_bin.tar.gz" {
		t.Errorf("stripPrefix = %q", got)
	}
}
