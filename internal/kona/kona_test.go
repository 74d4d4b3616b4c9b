package kona

import (
	"testing"

	"github.com/git-pkgs/jdks/internal/core"
)

const kona17JSON = `[
  {
    "tag_name": "TencentKona-17.0.6",
    "assets": [
      {"name": "TencentKona-17.0.6.b1-jdk_linux-x86_64.tar.gz",
       "browser_download_url": "https://github.com/Tencent/TencentKona-17/releases/download/TencentKona-17.0.6/TencentKona-17.0.6.b1-jdk_linux-x86_64.tar.gz",
       "size": 190000000},
      {"name": "TencentKona-17.0.6.b1-jdk_linux-x86_64.tar.gz.md5",
       "browser_download_url": "https://github.com/Tencent/TencentKona-17/releases/download/TencentKona-17.0.6/TencentKona-17.0.6.b1-jdk_linux-x86_64.tar.gz.md5"},
      {"name": "TencentKona-17.0.6.b1-jdk_linux-aarch64.tar.gz",
       "browser_download_url": "https://github.com/Tencent/TencentKona-17/releases/download/TencentKona-17.0.6/TencentKona-17.0.6.b1-jdk_linux-aarch64.tar.gz"},
      {"name": "TencentKona-17.0.6.b1-jdk_windows-x86_64.zip",
       "browser_download_url": "https://github.com/Tencent/TencentKona-17/releases/download/TencentKona-17.0.6/TencentKona-17.0.6.b1-jdk_windows-x86_64.zip"}
    ]
  }
]`

const kona8JSON = `[
  {
    "tag_name": "TencentKona-8.0.13-362",
    "assets": [
      {"name": "TencentKona8.0.13-362_jdk_linux-x86_64_8u362.tar.gz",
       "browser_download_url": "https://github.com/Tencent/TencentKona-8/releases/download/8.0.13-GA/TencentKona8.0.13-362_jdk_linux-x86_64_8u362.tar.gz"}
    ]
  }
]`

func TestParse(t *testing.T) {
	a := New("", nil)
	pkgs := a.Parse(core.NewPayload([]byte(kona17JSON), ""), core.Filter{})
	if len(pkgs) != 3 {
		t.Fatalf("got %d packages, want 3", len(pkgs))
	}

	p := pkgs[0]
	if got := p.JavaVersion.String(); got != "17.0.6" {
		t.Errorf("JavaVersion = %q, want 17.0.6", got)
	}
	if got := p.DistributionVersion.String(); got != "17.0.6+1" {
		t.Errorf("DistributionVersion = %q, want 17.0.6+1", got)
	}
	if p.Architecture != core.ArchX64 || p.OperatingSystem != core.OSLinux {
		t.Errorf("platform = %s/%s, want linux/x64", p.OperatingSystem, p.Architecture)
	}
	if p.ChecksumType != core.HashMD5 {
		t.Errorf("ChecksumType = %q, want md5", p.ChecksumType)
	}
	if p.Size != 190000000 {
		t.Errorf("Size = %d", p.Size)
	}
	if pkgs[1].Architecture != core.ArchAArch64 {
		t.Errorf("Architecture = %q, want aarch64", pkgs[1].Architecture)
	}
	if pkgs[2].OperatingSystem != core.OSWindows || pkgs[2].ArchiveType != core.ArchiveZip {
		t.Errorf("windows = %s/%s", pkgs[2].OperatingSystem, pkgs[2].ArchiveType)
	}
}

func TestParseJDK8(t *testing.T) {
	a := New("", nil)
	pkgs := a.Parse(core.NewPayload([]byte(kona8JSON), ""), core.Filter{})
	if len(pkgs) != 1 {
		t.Fatalf("got %d packages, want 1", len(pkgs))
	}
	p := pkgs[0]
	if got := p.JavaVersion.String(); got != "8.0.362" {
		t.Errorf("JavaVersion = %q, want 8.0.362", got)
	}
	if got := p.DistributionVersion.String(); got != "8.0.13+362" {
		t.Errorf("DistributionVersion = %q, want 8.0.13+362", got)
	}
	if p.TermOfSupport != core.TermLTS {
		t.Errorf("TermOfSupport = %q, want lts", p.TermOfSupport)
	}
}

func TestLocator(t *testing.T) {
	a := New("", nil)
	if got := a.Locator(core.Filter{}); got != "" {
		t.Errorf("Locator without feature = %q, want empty", got)
	}
	want := "https://api.github.com/repos/Tencent/TencentKona-11/releases?per_page=100"
	if got := a.Locator(core.Filter{Version: core.NewVersionNumber(11)}); got != want {
		t.Errorf("Locator = %q, want %q", got, want)
	}
}
