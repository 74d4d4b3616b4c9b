package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Package is the canonical record describing one downloadable artifact.
type Package struct {
	Distribution         Distribution `json:"distribution"`
	Filename             string       `json:"filename"`
	DirectDownloadURI    string       `json:"direct_download_uri,omitempty"`
	DownloadSiteURI      string       `json:"download_site_uri,omitempty"`
	DirectlyDownloadable bool         `json:"directly_downloadable"`

	Architecture    Architecture    `json:"architecture"`
	Bitness         Bitness         `json:"bitness"`
	FPU             FPU             `json:"fpu,omitempty"`
	OperatingSystem OperatingSystem `json:"operating_system"`
	LibCType        LibCType        `json:"lib_c_type"`
	ArchiveType     ArchiveType     `json:"archive_type"`
	PackageType     PackageType     `json:"package_type"`
	ReleaseStatus   ReleaseStatus   `json:"release_status"`
	TermOfSupport   TermOfSupport   `json:"term_of_support"`

	// JavaVersion is the runtime version the artifact implements and the
	// record's version number.
	JavaVersion VersionNumber `json:"java_version"`
	// DistributionVersion is the vendor's own build or revision number.
	DistributionVersion VersionNumber `json:"distribution_version"`
	MajorVersion        int           `json:"major_version"`

	ChecksumURI   string        `json:"checksum_uri,omitempty"`
	Checksum      string        `json:"checksum,omitempty"`
	ChecksumType  HashAlgorithm `json:"checksum_type,omitempty"`
	SignatureURI  string        `json:"signature_uri,omitempty"`
	SignatureType SignatureType `json:"signature_type,omitempty"`
	Size          int64         `json:"size,omitempty"`

	JavaFXBundled       bool         `json:"javafx_bundled"`
	FreeUseInProduction bool         `json:"free_use_in_production"`
	TCKTested           Verification `json:"tck_tested"`
	TCKCertURI          string       `json:"tck_cert_uri,omitempty"`
	Latest              bool         `json:"latest_build_available,omitempty"`
}

// NewPackage returns a record with the defaults most vendors share:
// directly downloadable, free to use, TCK status unknown.
func NewPackage(d Distribution, filename, uri string) *Package {
	return &Package{
		Distribution:         d,
		Filename:             filename,
		DirectDownloadURI:    uri,
		DirectlyDownloadable: uri != "",
		FreeUseInProduction:  true,
		TCKTested:            VerificationUnknown,
	}
}

// Key identifies the artifact for "already known" checks.
func (p *Package) Key() string {
	return p.Filename + "|" + p.DirectDownloadURI
}

// ID is a stable hex digest of Key.
func (p *Package) ID() string {
	sum := sha256.Sum256([]byte(string(p.Distribution) + "|" + p.Key()))
	return hex.EncodeToString(sum[:16])
}

// Classify resolves architecture, archive type, operating system (with
// the archive fallback), package type and FPU from haystack. Adapters pass
// the filename with the vendor prefix removed.
func (p *Package) Classify(haystack string) *Package {
	p.Architecture, _ = ResolveArchitecture(haystack)
	p.ArchiveType, _ = ResolveArchiveType(haystack)
	p.OperatingSystem, _ = ResolveOperatingSystemWithFallback(haystack, p.ArchiveType)
	p.PackageType = ResolvePackageType(haystack)
	p.FPU = ResolveFPU(haystack, p.Architecture)
	return p
}
