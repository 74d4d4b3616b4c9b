package core

import "strings"

// Resolve returns the value of the first table entry with a token that is
// a substring of haystack. Matching is case-insensitive containment, not
// tokenisation, because vendor filenames are not reliably delimited.
func Resolve[T ~string](haystack string, table Table[T]) (T, bool) {
	h := strings.ToLower(haystack)
	for _, e := range table {
		for _, tok := range e.Tokens {
			if strings.Contains(h, tok) {
				return e.Value, true
			}
		}
	}
	var none T
	return none, false
}

// Match returns the value whose token equals value exactly, ignoring case,
// a leading "." and trailing delimiters on the token. It is meant for JSON
// enum fields such as "tar.gz" or "mac" where containment would be too loose.
func Match[T ~string](value string, table Table[T]) (T, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, e := range table {
		if strings.EqualFold(string(e.Value), v) {
			return e.Value, true
		}
		for _, tok := range e.Tokens {
			if tok == v || strings.TrimPrefix(tok, ".") == v || strings.TrimRight(tok, "_-.") == v {
				return e.Value, true
			}
		}
	}
	var none T
	return none, false
}

// ResolveArchitecture finds the architecture token in haystack.
func ResolveArchitecture(haystack string) (Architecture, bool) {
	return Resolve(haystack, ArchitectureTable)
}

// ResolveOperatingSystem finds the operating system token in haystack.
func ResolveOperatingSystem(haystack string) (OperatingSystem, bool) {
	return Resolve(haystack, OperatingSystemTable)
}

// ResolveArchiveType finds the archive suffix in haystack.
func ResolveArchiveType(haystack string) (ArchiveType, bool) {
	return Resolve(haystack, ArchiveTypeTable)
}

// ResolvePackageType returns jre when haystack names a runtime image and
// jdk otherwise.
func ResolvePackageType(haystack string) PackageType {
	if pt, ok := Resolve(haystack, PackageTypeTable); ok {
		return pt
	}
	return PackageTypeJDK
}

// ResolveFPU returns the floating point ABI for ARM builds and FPUNone for
// every other architecture.
func ResolveFPU(haystack string, arch Architecture) FPU {
	if arch != ArchARM {
		return FPUNone
	}
	if fpu, ok := Resolve(haystack, FPUTable); ok {
		return fpu
	}
	return FPUUnknown
}

// OperatingSystemFromArchive maps an archive type to the operating system
// that conventionally uses it.
func OperatingSystemFromArchive(a ArchiveType) (OperatingSystem, bool) {
	os, ok := osByArchive[a]
	return os, ok
}

// ResolveOperatingSystemWithFallback tries a direct token match and falls
// back to the archive type.
func ResolveOperatingSystemWithFallback(haystack string, a ArchiveType) (OperatingSystem, bool) {
	if os, ok := ResolveOperatingSystem(haystack); ok {
		return os, true
	}
	return OperatingSystemFromArchive(a)
}

// DefaultMacArchitecture returns x64 for macOS artifacts whose name carries
// no architecture. Some vendors omitted the token while macOS builds were
// x64 only; this holds for those release lines, not in general.
func DefaultMacArchitecture(arch Architecture, os OperatingSystem) Architecture {
	if arch == ArchNone && os == OSMacOS {
		return ArchX64
	}
	return arch
}

// ResolveHashAlgorithm identifies the checksum algorithm from a filename
// or API field.
func ResolveHashAlgorithm(haystack string) (HashAlgorithm, bool) {
	return Resolve(haystack, HashAlgorithmTable)
}

// ResolveSignatureType identifies a detached signature file.
func ResolveSignatureType(haystack string) (SignatureType, bool) {
	return Resolve(haystack, SignatureTypeTable)
}

// StatusSignal is one source of release status evidence. It reports false
// when it has nothing to say about the candidate.
type StatusSignal func() (ReleaseStatus, bool)

// ResolveReleaseStatus returns the status of the first applicable signal,
// or GA when none applies. Callers list signals by priority: explicit
// vendor flag, filename marker, schedule heuristic.
func ResolveReleaseStatus(signals ...StatusSignal) ReleaseStatus {
	for _, s := range signals {
		if s == nil {
			continue
		}
		if st, ok := s(); ok {
			return st
		}
	}
	return StatusGA
}

// StatusFromFlag uses a vendor prerelease boolean when the payload has one.
func StatusFromFlag(prerelease, present bool) StatusSignal {
	return func() (ReleaseStatus, bool) {
		if !present {
			return StatusNone, false
		}
		if prerelease {
			return StatusEA, true
		}
		return StatusGA, true
	}
}

// StatusFromValue matches a vendor enum such as "ea", "ga" or "EA".
func StatusFromValue(value string) StatusSignal {
	return func() (ReleaseStatus, bool) {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "ea", "early_access", "earlyaccess", "beta", "prerelease":
			return StatusEA, true
		case "ga", "ca", "release", "general_availability":
			return StatusGA, true
		}
		return StatusNone, false
	}
}

// StatusFromFilename looks for EA or GA markers in a filename.
func StatusFromFilename(name string) StatusSignal {
	return func() (ReleaseStatus, bool) {
		return Resolve(name, ReleaseStatusTable)
	}
}

// StatusFromSchedule marks the next unreleased feature versions as EA.
// A GA shipped unusually early relative to the schedule is misclassified;
// that approximation is accepted.
func StatusFromSchedule(s *Schedule, feature int) StatusSignal {
	return func() (ReleaseStatus, bool) {
		if s == nil || !s.IsUpcoming(feature) {
			return StatusNone, false
		}
		return StatusEA, true
	}
}
