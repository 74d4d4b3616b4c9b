package core

// Filter narrows the packages an adapter emits. Zero-valued fields are
// unconstrained.
type Filter struct {
	// Version is the target version, possibly only a feature number.
	Version VersionNumber
	// Latest restricts results to the feature of Version and lets adapters
	// stop at the first candidate of another feature.
	Latest          bool
	OperatingSystem OperatingSystem
	Architecture    Architecture
	Bitness         Bitness
	ArchiveType     ArchiveType
	PackageType     PackageType
	// JavaFX is nil when the caller does not care.
	JavaFX        *bool
	ReleaseStatus ReleaseStatus
	TermOfSupport TermOfSupport
}

// Feature returns the target feature version, 0 when unconstrained.
func (f Filter) Feature() int {
	return f.Version.Feature()
}

// FeatureMismatch reports whether a latest-only filter excludes a
// candidate of version v. Only the feature component is compared.
func (f Filter) FeatureMismatch(v VersionNumber) bool {
	if !f.Latest || !f.Version.HasFeature() {
		return false
	}
	return !f.Version.FeatureEquals(v)
}

// VersionMatches reports whether v satisfies the version constraint: with
// Latest only the feature must agree, otherwise every component present in
// the target must agree.
func (f Filter) VersionMatches(v VersionNumber) bool {
	if !f.Version.HasFeature() {
		return true
	}
	if f.Latest {
		return f.Version.FeatureEquals(v)
	}
	return v.HasPrefix(f.Version)
}

// Matches applies every constraint to p.
func (f Filter) Matches(p *Package) bool {
	switch {
	case !f.VersionMatches(p.JavaVersion):
		return false
	case f.OperatingSystem != OSNone && f.OperatingSystem != p.OperatingSystem:
		return false
	case f.Architecture != ArchNone && f.Architecture != p.Architecture:
		return false
	case f.Bitness != BitsNone && f.Bitness != p.Bitness:
		return false
	case f.ArchiveType != ArchiveNone && f.ArchiveType != p.ArchiveType:
		return false
	case f.PackageType != PackageTypeNone && f.PackageType != p.PackageType:
		return false
	case f.JavaFX != nil && *f.JavaFX != p.JavaFXBundled:
		return false
	case f.ReleaseStatus != StatusNone && f.ReleaseStatus != p.ReleaseStatus:
		return false
	case f.TermOfSupport != TermNone && f.TermOfSupport.Demote() != p.TermOfSupport:
		return false
	}
	return true
}
