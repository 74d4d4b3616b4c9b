package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertOrdered checks that no token is a substring of a token listed
// later under a different value. Such a later token could never win.
func assertOrdered[T ~string](t *testing.T, name string, table Table[T]) {
	t.Helper()
	for i, e := range table {
		for _, tok := range e.Tokens {
			for _, later := range table[i+1:] {
				if later.Value == e.Value {
					continue
				}
				for _, lt := range later.Tokens {
					assert.NotContains(t, lt, tok, "%s: %q (%s) shadows %q (%s)", name, tok, e.Value, lt, later.Value)
				}
			}
		}
	}
}

func TestTableOrdering(t *testing.T) {
	assertOrdered(t, "architecture", ArchitectureTable)
	assertOrdered(t, "fpu", FPUTable)
	assertOrdered(t, "operating system", OperatingSystemTable)
	assertOrdered(t, "archive type", ArchiveTypeTable)
	assertOrdered(t, "package type", PackageTypeTable)
	assertOrdered(t, "release status", ReleaseStatusTable)
	assertOrdered(t, "hash algorithm", HashAlgorithmTable)
	assertOrdered(t, "signature type", SignatureTypeTable)
}

func TestResolveArchitecture(t *testing.T) {
	tests := []struct {
		haystack string
		want     Architecture
	}{
		{"linux-x86_64.tar.gz", ArchX64},
		{"linux-amd64.tar.gz", ArchX64},
		{"windows-x86.zip", ArchX86},
		{"linux-i686.tar.gz", ArchX86},
		{"macos-aarch64.tar.gz", ArchAArch64},
		{"macos-arm64.pkg", ArchAArch64},
		{"linux-arm32-vfp-hflt.tar.gz", ArchARM},
		{"linux-ppc64le.tar.gz", ArchPPC64LE},
		{"aix-ppc64.tar.gz", ArchPPC64},
		{"linux-s390x.tar.gz", ArchS390X},
		{"linux-riscv64.tar.gz", ArchRISCV64},
		{"LINUX-X64.TAR.GZ", ArchX64},
		{"linux.tar.gz", ArchNone},
	}
	for _, tt := range tests {
		t.Run(tt.haystack, func(t *testing.T) {
			got, ok := ResolveArchitecture(tt.haystack)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != ArchNone, ok)
		})
	}
}

func TestResolveOperatingSystem(t *testing.T) {
	tests := []struct {
		haystack string
		want     OperatingSystem
	}{
		{"linux-x64.tar.gz", OSLinux},
		{"linux_musl-x64.tar.gz", OSLinuxMusl},
		{"alpine-linux-x64.tar.gz", OSLinuxMusl},
		{"darwin-amd64.tar.gz", OSMacOS},
		{"macosx-aarch64.pkg", OSMacOS},
		{"osx-x64.tar.gz", OSMacOS},
		{"win_x64.zip", OSWindows},
		{"windows-x64.msi", OSWindows},
		{"solaris-sparcv9.tar.gz", OSSolaris},
		{"aix-ppc64.tar.gz", OSAIX},
	}
	for _, tt := range tests {
		t.Run(tt.haystack, func(t *testing.T) {
			got, ok := ResolveOperatingSystem(tt.haystack)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveOperatingSystemBrandsContainingMac(t *testing.T) {
	tests := []struct {
		haystack string
		want     OperatingSystem
		ok       bool
	}{
		{"sapmachine-jdk-17.0.6_linux-x64_bin.tar.gz", OSLinux, true},
		{"sapmachine-jdk-17.0.6_windows-x64_bin.zip", OSWindows, true},
		{"sapmachine-jdk", OSNone, false},
		{"machine-learning-jdk-17", OSNone, false},
		{"openlogic-openjdk-11.0.18+10-mac-x64.zip", OSMacOS, true},
		{"ibm-semeru-open-jdk_x64_mac_17.0.6_10_openj9-0.36.0.tar.gz", OSMacOS, true},
		{"OpenJDK17U-jdk_x64_mac_hotspot_17.0.6_10.tar.gz", OSMacOS, true},
		{"jdk-17_x64.mac.tar.gz", OSMacOS, true},
	}
	for _, tt := range tests {
		t.Run(tt.haystack, func(t *testing.T) {
			got, ok := ResolveOperatingSystem(tt.haystack)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchDelimitedToken(t *testing.T) {
	got, ok := Match("mac", OperatingSystemTable)
	assert.True(t, ok)
	assert.Equal(t, OSMacOS, got)

	_, ok = Match("mach", OperatingSystemTable)
	assert.False(t, ok)
}

func TestOperatingSystemFallback(t *testing.T) {
	tests := []struct {
		haystack string
		want     OperatingSystem
	}{
		{"java-17-openjdk-17.0.6-x86_64.rpm", OSLinux},
		{"openjdk-17-jdk_17.0.6+10-1_amd64.deb", OSLinux},
		{"jdk-17.0.6-x64.msi", OSWindows},
		{"jdk-17.0.6-x64.dmg", OSMacOS},
		{"jdk-17.0.6-aarch64.pkg", OSMacOS},
		{"jdk-17.0.6-x86_64.apk", OSLinuxMusl},
	}
	for _, tt := range tests {
		t.Run(tt.haystack, func(t *testing.T) {
			archive, ok := ResolveArchiveType(tt.haystack)
			assert.True(t, ok)
			got, ok := ResolveOperatingSystemWithFallback(tt.haystack, archive)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := OperatingSystemFromArchive(ArchiveNone)
	assert.False(t, ok)
}

func TestResolveArchiveType(t *testing.T) {
	tests := []struct {
		haystack string
		want     ArchiveType
	}{
		{"x.tar.gz", ArchiveTarGz},
		{"x.tgz", ArchiveTarGz},
		{"x.tar.xz", ArchiveTarXz},
		{"x.tar.Z", ArchiveTarZ},
		{"x.tar", ArchiveTar},
		{"x.zip", ArchiveZip},
		{"x.msi", ArchiveMSI},
		{"x.deb", ArchiveDEB},
		{"x.rpm", ArchiveRPM},
		{"x.exe", ArchiveEXE},
	}
	for _, tt := range tests {
		got, ok := ResolveArchiveType(tt.haystack)
		assert.True(t, ok, tt.haystack)
		assert.Equal(t, tt.want, got, tt.haystack)
	}
}

func TestResolvePackageType(t *testing.T) {
	assert.Equal(t, PackageTypeJRE, ResolvePackageType("jre_x64_linux.tar.gz"))
	assert.Equal(t, PackageTypeJDK, ResolvePackageType("jdk_x64_linux.tar.gz"))
	assert.Equal(t, PackageTypeJDK, ResolvePackageType("x64_linux.tar.gz"))
}

func TestResolveFPU(t *testing.T) {
	assert.Equal(t, FPUHard, ResolveFPU("linux-armhf.tar.gz", ArchARM))
	assert.Equal(t, FPUSoft, ResolveFPU("linux-armel.tar.gz", ArchARM))
	assert.Equal(t, FPUUnknown, ResolveFPU("linux-arm32.tar.gz", ArchARM))
	assert.Equal(t, FPUNone, ResolveFPU("linux-armhf.tar.gz", ArchAArch64))
}

func TestMatch(t *testing.T) {
	archive, ok := Match("tar.gz", ArchiveTypeTable)
	assert.True(t, ok)
	assert.Equal(t, ArchiveTarGz, archive)

	archive, ok = Match("tar_gz", ArchiveTypeTable)
	assert.True(t, ok)
	assert.Equal(t, ArchiveTarGz, archive)

	arch, ok := Match("AMD64", ArchitectureTable)
	assert.True(t, ok)
	assert.Equal(t, ArchX64, arch)

	// Exact matching does not fall for substrings.
	_, ok = Match("x86_64-linux", ArchitectureTable)
	assert.False(t, ok)
}

func TestDefaultMacArchitecture(t *testing.T) {
	assert.Equal(t, ArchX64, DefaultMacArchitecture(ArchNone, OSMacOS))
	assert.Equal(t, ArchAArch64, DefaultMacArchitecture(ArchAArch64, OSMacOS))
	assert.Equal(t, ArchNone, DefaultMacArchitecture(ArchNone, OSLinux))
}

func TestResolveReleaseStatus(t *testing.T) {
	assert.Equal(t, StatusGA, ResolveReleaseStatus())
	assert.Equal(t, StatusEA, ResolveReleaseStatus(StatusFromFilename("openjdk-21-ea+35_linux-x64_bin.tar.gz")))
	assert.Equal(t, StatusGA, ResolveReleaseStatus(
		StatusFromFlag(false, true),
		StatusFromFilename("jdk-21-ea"),
	))
	assert.Equal(t, StatusEA, ResolveReleaseStatus(
		StatusFromFlag(false, false),
		StatusFromFilename("jdk-21-ea"),
	))
	assert.Equal(t, StatusEA, ResolveReleaseStatus(StatusFromValue("EA")))
	assert.Equal(t, StatusGA, ResolveReleaseStatus(StatusFromValue("ca")))
	assert.Equal(t, StatusEA, ResolveReleaseStatus(nil, StatusFromSchedule(DefaultSchedule(), 26)))
	assert.Equal(t, StatusGA, ResolveReleaseStatus(StatusFromSchedule(DefaultSchedule(), 21)))
}

func TestResolveHashAndSignature(t *testing.T) {
	h, ok := ResolveHashAlgorithm("x.tar.gz.sha256.txt")
	assert.True(t, ok)
	assert.Equal(t, HashSHA256, h)

	h, _ = ResolveHashAlgorithm("SHA1")
	assert.Equal(t, HashSHA1, h)

	s, ok := ResolveSignatureType("x.tar.gz.asc")
	assert.True(t, ok)
	assert.Equal(t, SignaturePGP, s)
}
