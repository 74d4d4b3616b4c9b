package trava

import (
	"testing"

	"github.com/git-pkgs/jdks/internal/core"
)

const releasesJSON = `[
  {
    "tag_name": "dcevm-11.0.15+1",
    "assets": [
      {"name": "java11-openjdk-dcevm-linux-amd64.tar.gz",
       "browser_download_url": "https://github.com/TravaOpenJDK/trava-jdk-11-dcevm/releases/download/dcevm-11.0.15%2B1/java11-openjdk-dcevm-linux-amd64.tar.gz"},
      {"name": "java11-openjdk-dcevm-osx-amd64.tar.gz",
       "browser_download_url": "https://github.com/TravaOpenJDK/trava-jdk-11-dcevm/releases/download/dcevm-11.0.15%2B1/java11-openjdk-dcevm-osx-amd64.tar.gz"},
      {"name": "java11-openjdk-dcevm-windows-amd64.zip",
       "browser_download_url": "https://github.com/TravaOpenJDK/trava-jdk-11-dcevm/releases/download/dcevm-11.0.15%2B1/java11-openjdk-dcevm-windows-amd64.zip"}
    ]
  }
]`

const trava8JSON = `[
  {
    "tag_name": "dcevm8u282b08",
    "assets": [
      {"name": "java8-openjdk-dcevm-linux.tar.gz",
       "browser_download_url": "https://github.com/TravaOpenJDK/trava-jdk-8-dcevm/releases/download/dcevm8u282b08/java8-openjdk-dcevm-linux.tar.gz"}
    ]
  }
]`

func TestParse(t *testing.T) {
	a := New("", nil)
	pkgs := a.Parse(core.NewPayload([]byte(releasesJSON), ""), core.Filter{})
	if len(pkgs) != 3 {
		t.Fatalf("got %d packages, want 3", len(pkgs))
	}
	want := []core.OperatingSystem{core.OSLinux, core.OSMacOS, core.OSWindows}
	for i, p := range pkgs {
		if got := p.JavaVersion.String(); got != "11.0.15+1" {
			t.Errorf("%s: JavaVersion = %q, want 11.0.15+1", p.Filename, got)
		}
		if p.OperatingSystem != want[i] {
			t.Errorf("%s: OperatingSystem = %q, want %q", p.Filename, p.OperatingSystem, want[i])
		}
		if p.Architecture != core.ArchX64 {
			t.Errorf("%s: Architecture = %q, want x64", p.Filename, p.Architecture)
		}
	}
}

func TestParseJDK8(t *testing.T) {
	a := New("", nil)
	pkgs := a.Parse(core.NewPayload([]byte(trava8JSON), ""), core.Filter{})
	if len(pkgs) != 1 {
		t.Fatalf("got %d packages, want 1", len(pkgs))
	}
	p := pkgs[0]
	if got := p.JavaVersion.String(); got != "8.0.282+8" {
		t.Errorf("JavaVersion = %q, want 8.0.282+8", got)
	}
	if p.Architecture != core.ArchX64 || p.OperatingSystem != core.OSLinux {
		t.Errorf("platform = %s/%s", p.OperatingSystem, p.Architecture)
	}
}
