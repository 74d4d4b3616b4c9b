// Package core provides the version model, classification tables, the
// canonical package record and the adapter registry.
package core

// Distribution identifies a vendor build of the runtime.
type Distribution string

// Architecture is the processor architecture an artifact targets.
type Architecture string

const (
	ArchNone        Architecture = ""
	ArchAArch64     Architecture = "aarch64"
	ArchARM         Architecture = "arm"
	ArchLoongArch64 Architecture = "loongarch64"
	ArchMIPS        Architecture = "mips"
	ArchPPC         Architecture = "ppc"
	ArchPPC64       Architecture = "ppc64"
	ArchPPC64LE     Architecture = "ppc64le"
	ArchRISCV64     Architecture = "riscv64"
	ArchS390X       Architecture = "s390x"
	ArchSPARC       Architecture = "sparc"
	ArchSPARCV9     Architecture = "sparcv9"
	ArchX64         Architecture = "x64"
	ArchX86         Architecture = "x86"
)

// Bitness returns the word size of the architecture.
func (a Architecture) Bitness() Bitness {
	switch a {
	case ArchARM, ArchMIPS, ArchPPC, ArchSPARC, ArchX86:
		return Bits32
	case ArchNone:
		return BitsNone
	default:
		return Bits64
	}
}

// Bitness is 32 or 64 bit.
type Bitness string

const (
	BitsNone Bitness = ""
	Bits32   Bitness = "32"
	Bits64   Bitness = "64"
)

// FPU is the floating point ABI of 32 bit ARM builds.
type FPU string

const (
	FPUNone    FPU = ""
	FPUHard    FPU = "hard_float"
	FPUSoft    FPU = "soft_float"
	FPUUnknown FPU = "unknown"
)

// OperatingSystem is the target operating system of an artifact.
type OperatingSystem string

const (
	OSNone      OperatingSystem = ""
	OSLinux     OperatingSystem = "linux"
	OSLinuxMusl OperatingSystem = "linux_musl"
	OSMacOS     OperatingSystem = "macos"
	OSWindows   OperatingSystem = "windows"
	OSSolaris   OperatingSystem = "solaris"
	OSAIX       OperatingSystem = "aix"
	OSQNX       OperatingSystem = "qnx"
)

// LibCType returns the C library flavour implied by the operating system.
func (o OperatingSystem) LibCType() LibCType {
	switch o {
	case OSLinux:
		return LibCGlibc
	case OSLinuxMusl:
		return LibCMusl
	case OSWindows:
		return LibCCStdLib
	case OSNone:
		return LibCNone
	default:
		return LibCLibc
	}
}

// LibCType is the C library an artifact is linked against.
type LibCType string

const (
	LibCNone    LibCType = ""
	LibCGlibc   LibCType = "glibc"
	LibCMusl    LibCType = "musl"
	LibCLibc    LibCType = "libc"
	LibCCStdLib LibCType = "c_std_lib"
)

// ArchiveType is the packaging format of an artifact.
type ArchiveType string

const (
	ArchiveNone  ArchiveType = ""
	ArchiveAPK   ArchiveType = "apk"
	ArchiveCAB   ArchiveType = "cab"
	ArchiveDEB   ArchiveType = "deb"
	ArchiveDMG   ArchiveType = "dmg"
	ArchiveEXE   ArchiveType = "exe"
	ArchiveMSI   ArchiveType = "msi"
	ArchivePKG   ArchiveType = "pkg"
	ArchiveRPM   ArchiveType = "rpm"
	ArchiveTar   ArchiveType = "tar"
	ArchiveTarGz ArchiveType = "tar_gz"
	ArchiveTarXz ArchiveType = "tar_xz"
	ArchiveTarZ  ArchiveType = "tar_z"
	ArchiveZip   ArchiveType = "zip"
)

// PackageType distinguishes a full development kit from a runtime image.
type PackageType string

const (
	PackageTypeNone PackageType = ""
	PackageTypeJDK  PackageType = "jdk"
	PackageTypeJRE  PackageType = "jre"
)

// ReleaseStatus is the maturity of a release.
type ReleaseStatus string

const (
	StatusNone ReleaseStatus = ""
	StatusEA   ReleaseStatus = "ea"
	StatusGA   ReleaseStatus = "ga"
)

// TermOfSupport is the support class of a feature release.
type TermOfSupport string

const (
	TermNone TermOfSupport = ""
	TermSTS  TermOfSupport = "sts"
	TermMTS  TermOfSupport = "mts"
	TermLTS  TermOfSupport = "lts"
)

// Demote maps MTS to STS; only STS and LTS are reported downstream.
func (t TermOfSupport) Demote() TermOfSupport {
	if t == TermMTS {
		return TermSTS
	}
	return t
}

// HashAlgorithm names a checksum algorithm.
type HashAlgorithm string

const (
	HashNone   HashAlgorithm = ""
	HashMD5    HashAlgorithm = "md5"
	HashSHA1   HashAlgorithm = "sha1"
	HashSHA256 HashAlgorithm = "sha256"
	HashSHA512 HashAlgorithm = "sha512"
)

// SignatureType names a detached signature format.
type SignatureType string

const (
	SignatureNone SignatureType = ""
	SignaturePGP  SignatureType = "pgp"
	SignatureSig  SignatureType = "sig"
)

// Verification is a tri-state certification flag.
type Verification string

const (
	VerificationUnknown Verification = "unknown"
	VerificationYes     Verification = "yes"
	VerificationNo      Verification = "no"
)
