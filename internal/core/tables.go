package core

// Entry maps one canonical value to the tokens that identify it.
type Entry[T ~string] struct {
	Value  T
	Tokens []string
}

// Table is an ordered list of entries. Resolution returns the first entry
// with a matching token, so a token that contains a shorter token of a
// different value must be listed before it.
type Table[T ~string] []Entry[T]

// Tokens are lower case. Ordering is load-bearing: see TestTableOrdering.

var ArchitectureTable = Table[Architecture]{
	{ArchAArch64, []string{"aarch64", "arm64", "armv8"}},
	{ArchPPC64LE, []string{"ppc64le", "ppc64el"}},
	{ArchPPC64, []string{"ppc64"}},
	{ArchPPC, []string{"powerpc", "ppc"}},
	{ArchRISCV64, []string{"riscv64"}},
	{ArchS390X, []string{"s390x"}},
	{ArchSPARCV9, []string{"sparcv9"}},
	{ArchSPARC, []string{"sparc"}},
	{ArchLoongArch64, []string{"loongarch64"}},
	{ArchX64, []string{"x86_64", "x86-64", "x64", "amd64"}},
	{ArchX86, []string{"x86_32", "x86", "i386", "i586", "i686", "x32"}},
	{ArchARM, []string{"aarch32", "arm32", "armhf", "armel", "armv7", "arm"}},
	{ArchMIPS, []string{"mipsel", "mips"}},
}

var FPUTable = Table[FPU]{
	{FPUHard, []string{"armhf", "32hf", "hflt", "hardfloat", "vfp"}},
	{FPUSoft, []string{"armel", "32sf", "sflt", "softfloat"}},
}

var OperatingSystemTable = Table[OperatingSystem]{
	{OSLinuxMusl, []string{"linux_musl", "linux-musl", "linuxmusl", "alpine", "musl"}},
	// Bare "mac" is only taken with a trailing delimiter; "sapmachine" would
	// match it otherwise.
	{OSMacOS, []string{"macosx", "macos", "mac_os", "osx", "darwin", "mac_", "mac-", "mac."}},
	{OSWindows, []string{"windows", "win64", "win32", "win"}},
	{OSLinux, []string{"linux"}},
	{OSSolaris, []string{"solaris", "sunos"}},
	{OSAIX, []string{"aix"}},
	{OSQNX, []string{"qnx"}},
}

var ArchiveTypeTable = Table[ArchiveType]{
	{ArchiveTarGz, []string{".tar.gz", ".tgz"}},
	{ArchiveTarXz, []string{".tar.xz", ".txz"}},
	{ArchiveTarZ, []string{".tar.z"}},
	{ArchiveTar, []string{".tar"}},
	{ArchiveZip, []string{".zip"}},
	{ArchiveMSI, []string{".msi"}},
	{ArchiveDMG, []string{".dmg"}},
	{ArchivePKG, []string{".pkg"}},
	{ArchiveDEB, []string{".deb"}},
	{ArchiveRPM, []string{".rpm"}},
	{ArchiveAPK, []string{".apk"}},
	{ArchiveCAB, []string{".cab"}},
	{ArchiveEXE, []string{".exe"}},
}

var PackageTypeTable = Table[PackageType]{
	{PackageTypeJRE, []string{"jre"}},
	{PackageTypeJDK, []string{"jdk"}},
}

var ReleaseStatusTable = Table[ReleaseStatus]{
	{StatusEA, []string{"-ea", "_ea", ".ea", "early_access", "earlyaccess", "-beta"}},
	{StatusGA, []string{"-ga", "_ga", "-ca-", "-ca_", "-ca."}},
}

var HashAlgorithmTable = Table[HashAlgorithm]{
	{HashSHA256, []string{".sha256", "sha256"}},
	{HashSHA512, []string{".sha512", "sha512"}},
	{HashSHA1, []string{".sha1", "sha1"}},
	{HashMD5, []string{".md5", "md5"}},
}

var SignatureTypeTable = Table[SignatureType]{
	{SignaturePGP, []string{".asc", ".gpg"}},
	{SignatureSig, []string{".sig"}},
}

// osByArchive is the fallback when a filename carries no OS token.
var osByArchive = map[ArchiveType]OperatingSystem{
	ArchiveDEB:   OSLinux,
	ArchiveRPM:   OSLinux,
	ArchiveTarGz: OSLinux,
	ArchiveTarXz: OSLinux,
	ArchiveTarZ:  OSLinux,
	ArchiveTar:   OSLinux,
	ArchiveAPK:   OSLinuxMusl,
	ArchiveMSI:   OSWindows,
	ArchiveZip:   OSWindows,
	ArchiveEXE:   OSWindows,
	ArchiveCAB:   OSWindows,
	ArchiveDMG:   OSMacOS,
	ArchivePKG:   OSMacOS,
}
