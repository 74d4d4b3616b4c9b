package core

import (
	"errors"
	"fmt"
)

// ErrUnknownDistribution is returned by New for unregistered distributions.
var ErrUnknownDistribution = errors.New("unknown distribution")

// Skip reasons reported by Admit.
const (
	ReasonVersion      = "version"
	ReasonArchitecture = "architecture"
	ReasonOS           = "operating_system"
	ReasonArchive      = "archive_type"
	ReasonPackageType  = "package_type"
	ReasonFilter       = "filter"
)

// SkipError describes why a candidate artifact was not emitted.
type SkipError struct {
	Distribution Distribution
	Filename     string
	Reason       string
}

func (e *SkipError) Error() string {
	if e.Reason == ReasonFilter {
		return fmt.Sprintf("%s: %s excluded by filter", e.Distribution, e.Filename)
	}
	return fmt.Sprintf("%s: %s has no recognisable %s", e.Distribution, e.Filename, e.Reason)
}

// Unresolved reports whether the skip was caused by a missing dimension
// rather than the caller's filter.
func (e *SkipError) Unresolved() bool {
	return e.Reason != ReasonFilter
}
