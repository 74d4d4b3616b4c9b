package corretto

import (
	"testing"

	"github.com/git-pkgs/jdks/internal/core"
)

const releasesJSON = `[
  {
    "tag_name": "17.0.6.10.1",
    "body": "|Platform|Type|Download Link|Checksum (MD5) / SHA256|Sig File|\n|---|---|---|---|---|\n|Linux x64|JDK|[amazon-corretto-17.0.6.10.1-linux-x64.tar.gz](https://corretto.aws/downloads/resources/17.0.6.10.1/amazon-corretto-17.0.6.10.1-linux-x64.tar.gz)|abc / def|[Download](https://corretto.aws/downloads/resources/17.0.6.10.1/amazon-corretto-17.0.6.10.1-linux-x64.tar.gz.sig)|\n|Alpine Linux x64|JDK|[amazon-corretto-17.0.6.10.1-alpine-linux-x64.tar.gz](https://corretto.aws/downloads/resources/17.0.6.10.1/amazon-corretto-17.0.6.10.1-alpine-linux-x64.tar.gz)|abc / def||\n|macOS aarch64|JDK|[amazon-corretto-17.0.6.10.1-macosx-aarch64.pkg](https://corretto.aws/downloads/resources/17.0.6.10.1/amazon-corretto-17.0.6.10.1-macosx-aarch64.pkg)|abc / def||\n|Windows x64|JDK|[amazon-corretto-17.0.6.10.1-windows-x64-jdk.zip](https://corretto.aws/downloads/resources/17.0.6.10.1/amazon-corretto-17.0.6.10.1-windows-x64-jdk.zip)|abc / def||\n|Latest|JDK|[latest](https://corretto.aws/downloads/latest/amazon-corretto-17-x64-linux-jdk.tar.gz)|||",
    "assets": []
  }
]`

const corretto8JSON = `[
  {
    "tag_name": "8.362.08.1",
    "body": "[macOS](https://corretto.aws/downloads/resources/8.362.08.1/amazon-corretto-8.362.08.1-macosx.pkg) [Windows JRE](https://corretto.aws/downloads/resources/8.362.08.1/amazon-corretto-8.362.08.1-windows-x64-jre.zip)"
  }
]`

func TestParse(t *testing.T) {
	a := New("", nil)
	pkgs := a.Parse(core.NewPayload([]byte(releasesJSON), ""), core.Filter{})
	if len(pkgs) != 4 {
		t.Fatalf("got %d packages, want 4", len(pkgs))
	}

	p := pkgs[0]
	if got := p.JavaVersion.String(); got != "17.0.6+10" {
		t.Errorf("JavaVersion = %q, want 17.0.6+10", got)
	}
	if got := p.DistributionVersion.String(); got != "17.0.6.10.1" {
		t.Errorf("DistributionVersion = %q, want 17.0.6.10.1", got)
	}
	if p.SignatureType != core.SignatureSig || p.SignatureURI == "" {
		t.Errorf("signature = %q %q", p.SignatureType, p.SignatureURI)
	}
	if p.TCKTested != core.VerificationYes {
		t.Errorf("TCKTested = %q, want yes", p.TCKTested)
	}

	if pkgs[1].OperatingSystem != core.OSLinuxMusl || pkgs[1].LibCType != core.LibCMusl {
		t.Errorf("alpine = %s/%s", pkgs[1].OperatingSystem, pkgs[1].LibCType)
	}
	if pkgs[2].OperatingSystem != core.OSMacOS || pkgs[2].Architecture != core.ArchAArch64 {
		t.Errorf("mac = %s/%s", pkgs[2].OperatingSystem, pkgs[2].Architecture)
	}
	if pkgs[3].OperatingSystem != core.OSWindows || pkgs[3].PackageType != core.PackageTypeJDK {
		t.Errorf("windows = %s/%s", pkgs[3].OperatingSystem, pkgs[3].PackageType)
	}
}

func TestParseCorretto8(t *testing.T) {
	a := New("", nil)
	pkgs := a.Parse(core.NewPayload([]byte(corretto8JSON), ""), core.Filter{})
	if len(pkgs) != 2 {
		t.Fatalf("got %d packages, want 2", len(pkgs))
	}
	mac := pkgs[0]
	if got := mac.JavaVersion.String(); got != "8.0.362+8" {
		t.Errorf("JavaVersion = %q, want 8.0.362+8", got)
	}
	if mac.Architecture != core.ArchX64 {
		t.Errorf("mac without arch token = %q, want x64", mac.Architecture)
	}
	if pkgs[1].PackageType != core.PackageTypeJRE {
		t.Errorf("PackageType = %q, want jre", pkgs[1].PackageType)
	}
}

func TestLocator(t *testing.T) {
	a := New("", nil)
	if got := a.Locator(core.Filter{}); got != "" {
		t.Errorf("Locator without feature = %q, want empty", got)
	}
	want := "https://api.github.com/repos/corretto/corretto-21/releases?per_page=100"
	if got := a.Locator(core.Filter{Version: core.NewVersionNumber(21)}); got != want {
		t.Errorf("Locator = %q, want %q", got, want)
	}
}
