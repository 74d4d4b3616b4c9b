package debian

import (
	"testing"

	"github.com/git-pkgs/jdks/internal/core"
)

const listing = `<html><body><table>
<tr><td><a href="openjdk-17_17.0.6+10-1.dsc">openjdk-17_17.0.6+10-1.dsc</a></td></tr>
<tr><td><a href="openjdk-17-jdk_17.0.6%2B10-1_amd64.deb">openjdk-17-jdk_17.0.6+10-1_amd64.deb</a></td></tr>
<tr><td><a href="openjdk-17-jre-headless_17.0.6%2B10-1_arm64.deb">openjdk-17-jre-headless_17.0.6+10-1_arm64.deb</a></td></tr>
<tr><td><a href="openjdk-17-jdk_17.0.6%2B10-1_armhf.deb">openjdk-17-jdk_17.0.6+10-1_armhf.deb</a></td></tr>
<tr><td><a href="openjdk-17-doc_17.0.6%2B10-1_all.deb">openjdk-17-doc_17.0.6+10-1_all.deb</a></td></tr>
<tr><td><a href="openjdk-17-dbg_17.0.6%2B10-1_amd64.deb">openjdk-17-dbg_17.0.6+10-1_amd64.deb</a></td></tr>
</table></body></html>`

func TestParse(t *testing.T) {
	a := New("", nil)
	src := a.Locator(core.Filter{Version: core.NewVersionNumber(17)})
	pkgs := a.Parse(core.NewPayload([]byte(listing), src), core.Filter{})
	if len(pkgs) != 3 {
		t.Fatalf("got %d packages, want 3", len(pkgs))
	}

	p := pkgs[0]
	if p.Filename != "openjdk-17-jdk_17.0.6+10-1_amd64.deb" {
		t.Errorf("Filename = %q", p.Filename)
	}
	if got := p.JavaVersion.String(); got != "17.0.6+10" {
		t.Errorf("JavaVersion = %q, want 17.0.6+10", got)
	}
	if p.OperatingSystem != core.OSLinux || p.ArchiveType != core.ArchiveDEB {
		t.Errorf("OperatingSystem/ArchiveType = %s/%s, want linux/deb", p.OperatingSystem, p.ArchiveType)
	}
	if p.Architecture != core.ArchX64 || p.PackageType != core.PackageTypeJDK {
		t.Errorf("Architecture/PackageType = %s/%s", p.Architecture, p.PackageType)
	}
	if pkgs[1].PackageType != core.PackageTypeJRE || pkgs[1].Architecture != core.ArchAArch64 {
		t.Errorf("headless = %s/%s", pkgs[1].PackageType, pkgs[1].Architecture)
	}
	if pkgs[2].Architecture != core.ArchARM || pkgs[2].FPU != core.FPUHard {
		t.Errorf("armhf = %s/%s", pkgs[2].Architecture, pkgs[2].FPU)
	}
}

func TestParseEarlyAccess(t *testing.T) {
	page := `<a href="openjdk-21-jdk_21~35ea-1_amd64.deb">openjdk-21-jdk_21~35ea-1_amd64.deb</a>`
	a := New("", nil)
	pkgs := a.Parse(core.NewPayload([]byte(page), DefaultURL+"/openjdk-21/"), core.Filter{})
	if len(pkgs) != 1 {
		t.Fatalf("got %d packages, want 1", len(pkgs))
	}
	p := pkgs[0]
	if p.ReleaseStatus != core.StatusEA {
		t.Errorf("ReleaseStatus = %q, want ea", p.ReleaseStatus)
	}
	if got := p.JavaVersion.String(); got != "21-ea+35" {
		t.Errorf("JavaVersion = %q, want 21-ea+35", got)
	}
}

func TestLocator(t *testing.T) {
	a := New("", nil)
	if got := a.Locator(core.Filter{}); got != "" {
		t.Errorf("Locator without feature = %q, want empty", got)
	}
	want := "https://deb.debian.org/debian/pool/main/o/openjdk-17/"
	if got := a.Locator(core.Filter{Version: core.NewVersionNumber(17)}); got != want {
		t.Errorf("Locator = %q, want %q", got, want)
	}
}
