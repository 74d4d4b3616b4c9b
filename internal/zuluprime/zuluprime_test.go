package zuluprime

import (
	"testing"

	"github.com/git-pkgs/jdks/internal/core"
)

const listing = `<html><body><pre>
<a href="../">../</a>
<a href="zing22.12.0.0-3-jdk17.0.6-linux_x64.tar.gz">zing22.12.0.0-3-jdk17.0.6-linux_x64.tar.gz</a>
<a href="zing22.12.0.0-3-jdk17.0.6-linux_aarch64.tar.gz">zing22.12.0.0-3-jdk17.0.6-linux_aarch64.tar.gz</a>
<a href="zing22.12.0.0-3-jdk11.0.18-linux.x86_64.rpm">zing22.12.0.0-3-jdk11.0.18-linux.x86_64.rpm</a>
<a href="zing22.12.0.0-3-jdk11.0.18-linux.x86_64.rpm.sha256">sha256</a>
<a href="zing23.02.0.0-ea-jdk21-ea-linux_x64.tar.gz">zing23.02.0.0-ea-jdk21-ea-linux_x64.tar.gz</a>
<a href="zing22.12.0.0-3-jdk17.0.6-linux.tar.gz">zing22.12.0.0-3-jdk17.0.6-linux.tar.gz</a>
</pre></body></html>`

func TestParse(t *testing.T) {
	a := New("", core.NewSchedule(22))
	pkgs := a.Parse(core.NewPayload([]byte(listing), DefaultURL+"/"), core.Filter{})
	if len(pkgs) != 4 {
		t.Fatalf("got %d packages, want 4", len(pkgs))
	}

	p := pkgs[0]
	if p.DirectDownloadURI != DefaultURL+"/zing22.12.0.0-3-jdk17.0.6-linux_x64.tar.gz" {
		t.Errorf("DirectDownloadURI = %q", p.DirectDownloadURI)
	}
	if got := p.JavaVersion.String(); got != "17.0.6" {
		t.Errorf("JavaVersion = %q, want 17.0.6", got)
	}
	if got := p.DistributionVersion.String(); got != "22.12.0.0+3" {
		t.Errorf("DistributionVersion = %q, want 22.12.0.0+3", got)
	}
	if p.FreeUseInProduction {
		t.Error("FreeUseInProduction = true, want false")
	}
	if p.OperatingSystem != core.OSLinux || p.Architecture != core.ArchX64 {
		t.Errorf("platform = %s/%s", p.OperatingSystem, p.Architecture)
	}

	rpm := pkgs[2]
	if rpm.ArchiveType != core.ArchiveRPM || rpm.Architecture != core.ArchX64 {
		t.Errorf("rpm = %s/%s", rpm.ArchiveType, rpm.Architecture)
	}
	if rpm.ChecksumType != core.HashSHA256 {
		t.Errorf("ChecksumType = %q, want sha256", rpm.ChecksumType)
	}

	ea := pkgs[3]
	if ea.ReleaseStatus != core.StatusEA || ea.MajorVersion != 21 {
		t.Errorf("ea = %s/%d, want ea/21", ea.ReleaseStatus, ea.MajorVersion)
	}
}

func TestParseSkipsUnrecognised(t *testing.T) {
	a := New("", nil)
	pkgs := a.Parse(core.NewPayload([]byte(`<a href="zing-readme.tar.gz">x</a>`), DefaultURL+"/"), core.Filter{})
	if len(pkgs) != 0 {
		t.Errorf("got %d packages, want 0", len(pkgs))
	}
}
