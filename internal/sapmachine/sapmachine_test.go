package sapmachine

import (
	"testing"

	"github.com/git-pkgs/jdks/internal/core"
)

const releasesJSON = `[
  {
    "tag_name": "sapmachine-21+35",
    "name": "SapMachine 21 Early Access Build 35",
    "prerelease": true,
    "draft": false,
    "assets": [
      {"name": "sapmachine-jdk-21-ea.35_linux-x64_bin.tar.gz", "size": 200000000,
       "browser_download_url": "https://github.com/SAP/SapMachine/releases/download/sapmachine-21%2B35/sapmachine-jdk-21-ea.35_linux-x64_bin.tar.gz"}
    ]
  },
  {
    "tag_name": "sapmachine-17.0.6",
    "name": "SapMachine 17.0.6",
    "prerelease": false,
    "assets": [
      {"name": "sapmachine-jdk-17.0.6_linux-x64_bin.tar.gz", "size": 190000000,
       "browser_download_url": "https://github.com/SAP/SapMachine/releases/download/sapmachine-17.0.6/sapmachine-jdk-17.0.6_linux-x64_bin.tar.gz"},
      {"name": "sapmachine-jdk-17.0.6_linux-x64_bin.sha256.txt", "size": 100,
       "browser_download_url": "https://github.com/SAP/SapMachine/releases/download/sapmachine-17.0.6/sapmachine-jdk-17.0.6_linux-x64_bin.sha256.txt"},
      {"name": "sapmachine-jdk-17.0.6_linux-x64-musl_bin.tar.gz", "size": 189000000,
       "browser_download_url": "https://github.com/SAP/SapMachine/releases/download/sapmachine-17.0.6/sapmachine-jdk-17.0.6_linux-x64-musl_bin.tar.gz"},
      {"name": "sapmachine-jre-17.0.6_macos-aarch64_bin.dmg", "size": 50000000,
       "browser_download_url": "https://github.com/SAP/SapMachine/releases/download/sapmachine-17.0.6/sapmachine-jre-17.0.6_macos-aarch64_bin.dmg"},
      {"name": "sapmachine-jdk-17.0.6_windows-x64_bin.msi", "size": 170000000,
       "browser_download_url": "https://github.com/SAP/SapMachine/releases/download/sapmachine-17.0.6/sapmachine-jdk-17.0.6_windows-x64_bin.msi"},
      {"name": "sapmachine-jdk-17.0.6_linux-x64_bin-symbols.tar.gz", "size": 20000000,
       "browser_download_url": "https://github.com/SAP/SapMachine/releases/download/sapmachine-17.0.6/sapmachine-jdk-17.0.6_linux-x64_bin-symbols.tar.gz"}
    ]
  },
  {
    "tag_name": "sapmachine-17.0.7-draft",
    "draft": true,
    "assets": [
      {"name": "sapmachine-jdk-17.0.7_linux-x64_bin.tar.gz",
       "browser_download_url": "https://github.com/SAP/SapMachine/releases/download/x/sapmachine-jdk-17.0.7_linux-x64_bin.tar.gz"}
    ]
  }
]`

func TestParse(t *testing.T) {
	a := New("", nil)
	pkgs := a.Parse(core.NewPayload([]byte(releasesJSON), ""), core.Filter{})
	if len(pkgs) != 5 {
		t.Fatalf("got %d packages, want 5", len(pkgs))
	}

	ea := pkgs[0]
	if ea.ReleaseStatus != core.StatusEA {
		t.Errorf("ReleaseStatus = %q, want ea", ea.ReleaseStatus)
	}
	if b, ok := ea.JavaVersion.Build(); !ok || b != 35 {
		t.Errorf("Build = %d, %v, want 35", b, ok)
	}

	linux := pkgs[1]
	if linux.OperatingSystem != core.OSLinux {
		t.Errorf("OperatingSystem = %q, want linux", linux.OperatingSystem)
	}
	if linux.ChecksumType != core.HashSHA256 {
		t.Errorf("ChecksumType = %q, want sha256", linux.ChecksumType)
	}
	if linux.Size != 190000000 {
		t.Errorf("Size = %d", linux.Size)
	}

	if pkgs[2].OperatingSystem != core.OSLinuxMusl {
		t.Errorf("musl OperatingSystem = %q, want linux_musl", pkgs[2].OperatingSystem)
	}

	mac := pkgs[3]
	if mac.OperatingSystem != core.OSMacOS || mac.Architecture != core.ArchAArch64 || mac.PackageType != core.PackageTypeJRE {
		t.Errorf("mac = %s/%s/%s", mac.OperatingSystem, mac.Architecture, mac.PackageType)
	}

	if pkgs[4].ArchiveType != core.ArchiveMSI || pkgs[4].OperatingSystem != core.OSWindows {
		t.Errorf("windows = %s/%s", pkgs[4].ArchiveType, pkgs[4].OperatingSystem)
	}
}

func TestNormalizeVersion(t *testing.T) {
	tests := map[string]string{
		"21-ea.35": "21-ea+35",
		"17.0.6":   "17.0.6",
	}
	for in, want := range tests {
		if got := normalizeVersion(in); got != want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLocator(t *testing.T) {
	a := New("", nil)
	want := "https://api.github.com/repos/SAP/SapMachine/releases?per_page=100"
	if got := a.Locator(core.Filter{}); got != want {
		t.Errorf("Locator = %q, want %q", got, want)
	}
}
