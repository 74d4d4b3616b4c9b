package dragonwell

import (
	"testing"

	"github.com/git-pkgs/jdks/internal/core"
)

const releasesJSON = `[
  {
    "tag_name": "dragonwell-standard-17.0.6.0.6+9_jdk-17.0.6-ga",
    "assets": [
      {"name": "Alibaba_Dragonwell_Standard_17.0.6.0.6+9_x64_linux.tar.gz",
       "browser_download_url": "https://github.com/dragonwell-project/dragonwell17/releases/download/dragonwell-standard-17.0.6.0.6%2B9_jdk-17.0.6-ga/Alibaba_Dragonwell_Standard_17.0.6.0.6+9_x64_linux.tar.gz"},
      {"name": "Alibaba_Dragonwell_Standard_17.0.6.0.6+9_x64_alpine-linux.tar.gz",
       "browser_download_url": "https://github.com/dragonwell-project/dragonwell17/releases/download/dragonwell-standard-17.0.6.0.6%2B9_jdk-17.0.6-ga/Alibaba_Dragonwell_Standard_17.0.6.0.6+9_x64_alpine-linux.tar.gz"},
      {"name": "Alibaba_Dragonwell_Standard_17.0.6.0.6+9_x64_windows.zip",
       "browser_download_url": "https://github.com/dragonwell-project/dragonwell17/releases/download/dragonwell-standard-17.0.6.0.6%2B9_jdk-17.0.6-ga/Alibaba_Dragonwell_Standard_17.0.6.0.6+9_x64_windows.zip"},
      {"name": "Alibaba_Dragonwell_Standard_17.0.6.0.6+9_x64_linux.tar.gz.sha256.txt",
       "browser_download_url": "https://github.com/dragonwell-project/dragonwell17/releases/download/dragonwell-standard-17.0.6.0.6%2B9_jdk-17.0.6-ga/Alibaba_Dragonwell_Standard_17.0.6.0.6+9_x64_linux.tar.gz.sha256.txt"}
    ]
  },
  {
    "tag_name": "dragonwell-extended-8.14.15_jdk8u362-ga",
    "assets": [
      {"name": "Alibaba_Dragonwell_Extended_8.14.15_aarch64_linux.tar.gz",
       "browser_download_url": "https://github.com/dragonwell-project/dragonwell8/releases/download/dragonwell-extended-8.14.15_jdk8u362-ga/Alibaba_Dragonwell_Extended_8.14.15_aarch64_linux.tar.gz"}
    ]
  }
]`

func TestParse(t *testing.T) {
	a := New("", nil)
	pkgs := a.Parse(core.NewPayload([]byte(releasesJSON), ""), core.Filter{})
	if len(pkgs) != 4 {
		t.Fatalf("got %d packages, want 4", len(pkgs))
	}

	p := pkgs[0]
	if got := p.JavaVersion.String(); got != "17.0.6+9" {
		t.Errorf("JavaVersion = %q, want 17.0.6+9", got)
	}
	if got := p.DistributionVersion.String(); got != "17.0.6.0.6+9" {
		t.Errorf("DistributionVersion = %q, want 17.0.6.0.6+9", got)
	}
	if p.ChecksumType != core.HashSHA256 {
		t.Errorf("ChecksumType = %q, want sha256", p.ChecksumType)
	}
	if pkgs[1].OperatingSystem != core.OSLinuxMusl {
		t.Errorf("alpine OperatingSystem = %q", pkgs[1].OperatingSystem)
	}
	if pkgs[2].OperatingSystem != core.OSWindows || pkgs[2].ArchiveType != core.ArchiveZip {
		t.Errorf("windows = %s/%s", pkgs[2].OperatingSystem, pkgs[2].ArchiveType)
	}

	eight := pkgs[3]
	if got := eight.JavaVersion.String(); got != "8.0.362" {
		t.Errorf("JavaVersion = %q, want 8.0.362", got)
	}
	if got := eight.DistributionVersion.String(); got != "8.14.15" {
		t.Errorf("DistributionVersion = %q, want 8.14.15", got)
	}
	if eight.Architecture != core.ArchAArch64 {
		t.Errorf("Architecture = %q, want aarch64", eight.Architecture)
	}
}

func TestLocator(t *testing.T) {
	a := New("", nil)
	want := "https://api.github.com/repos/dragonwell-project/dragonwell21/releases?per_page=100"
	if got := a.Locator(core.Filter{Version: core.NewVersionNumber(21)}); got != want {
		t.Errorf("Locator = %q, want %q", got, want)
	}
}
