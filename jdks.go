// Package jdks normalises JDK package metadata published by vendors
// (GitHub releases, JSON APIs, HTML download pages) into one canonical
// package record.
//
// Basic usage:
//
//	import (
//		"github.com/git-pkgs/jdks"
//		_ "github.com/git-pkgs/jdks/internal/temurin"
//	)
//
//	a, err := jdks.New("temurin", "", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	f := jdks.Filter{Version: jdks.ParseVersionNumber("21"), OperatingSystem: jdks.OSLinux}
//	url := a.Locator(f)
//	// fetch url, then
//	pkgs := a.Parse(jdks.NewPayload(body, url), f)
//
// To register every supported distribution, import the all subpackage:
//
//	import (
//		"github.com/git-pkgs/jdks"
//		_ "github.com/git-pkgs/jdks/all"
//	)
package jdks

import (
	"github.com/git-pkgs/purl"

	"github.com/git-pkgs/jdks/internal/core"
)

// Re-export types from internal/core
type (
	// Adapter is implemented by every distribution.
	Adapter = core.Adapter

	// Package is the canonical record for one downloadable artifact.
	Package = core.Package

	// Filter restricts which packages an adapter returns.
	Filter = core.Filter

	// Payload is the raw response body an adapter parses.
	Payload = core.Payload

	// Schedule holds the upcoming feature versions and support terms.
	Schedule = core.Schedule

	VersionNumber   = core.VersionNumber
	Distribution    = core.Distribution
	Architecture    = core.Architecture
	OperatingSystem = core.OperatingSystem
	ArchiveType     = core.ArchiveType
	PackageType     = core.PackageType
	ReleaseStatus   = core.ReleaseStatus
	TermOfSupport   = core.TermOfSupport

	// KnownSet answers whether a package key was seen before.
	KnownSet = core.KnownSet
	KeySet   = core.KeySet

	// SkipError describes a vendor entry that produced no record.
	SkipError = core.SkipError
)

// Re-export constants
const (
	OSLinux     = core.OSLinux
	OSLinuxMusl = core.OSLinuxMusl
	OSMacOS     = core.OSMacOS
	OSWindows   = core.OSWindows

	ArchX64     = core.ArchX64
	ArchAArch64 = core.ArchAArch64

	PackageTypeJDK = core.PackageTypeJDK
	PackageTypeJRE = core.PackageTypeJRE

	StatusGA = core.StatusGA
	StatusEA = core.StatusEA
)

// Re-export errors
var (
	ErrUnknownDistribution = core.ErrUnknownDistribution
)

// New creates an adapter for the given distribution.
// If baseURL is empty, the vendor's default endpoint is used.
// If schedule is nil, DefaultSchedule() is used.
func New(d Distribution, baseURL string, schedule *Schedule) (Adapter, error) {
	return core.New(d, baseURL, schedule)
}

// SupportedDistributions returns all registered distributions, sorted.
// Note: distributions must be imported to be registered.
func SupportedDistributions() []Distribution {
	return core.SupportedDistributions()
}

// DefaultURL returns the default endpoint for a distribution.
func DefaultURL(d Distribution) string {
	return core.DefaultURL(d)
}

// DefaultSchedule returns the built-in release schedule.
func DefaultSchedule() *Schedule {
	return core.DefaultSchedule()
}

// NewSchedule returns a schedule whose next early-access feature is nextEA.
func NewSchedule(nextEA int) *Schedule {
	return core.NewSchedule(nextEA)
}

// ParseVersionNumber parses a Java or vendor version string. Unparseable
// input yields the zero value.
func ParseVersionNumber(s string) VersionNumber {
	return core.ParseVersionNumber(s)
}

// NewPayload wraps a fetched body for parsing.
func NewPayload(body []byte, source string) Payload {
	return core.NewPayload(body, source)
}

// OnlyNew returns the packages whose key is not in known, keeping order.
func OnlyNew(pkgs []*Package, known KnownSet) []*Package {
	return core.OnlyNew(pkgs, known)
}

// PURL represents a parsed Package URL.
type PURL = purl.PURL

// ParsePURL parses a Package URL string into its components.
func ParsePURL(purlStr string) (*PURL, error) {
	return purl.Parse(purlStr)
}

// FilterFromPURL turns pkg:generic/<distribution>@<version>?os=..&arch=..
// into a distribution and filter.
func FilterFromPURL(purlStr string) (Distribution, Filter, error) {
	if _, err := ParsePURL(purlStr); err != nil {
		return "", Filter{}, err
	}
	return core.FilterFromPURL(purlStr)
}
