package core

import (
	"errors"
	"log/slog"
)

// Admit completes the derived fields of p and decides whether it may be
// emitted. It returns a *SkipError when a mandatory dimension is missing
// or when f excludes the package.
func Admit(p *Package, f Filter, s *Schedule) error {
	skip := func(reason string) error {
		return &SkipError{Distribution: p.Distribution, Filename: p.Filename, Reason: reason}
	}

	switch {
	case !p.JavaVersion.HasFeature():
		return skip(ReasonVersion)
	case p.Architecture == ArchNone:
		return skip(ReasonArchitecture)
	case p.OperatingSystem == OSNone:
		return skip(ReasonOS)
	case p.ArchiveType == ArchiveNone:
		return skip(ReasonArchive)
	case p.PackageType == PackageTypeNone:
		return skip(ReasonPackageType)
	}

	p.MajorVersion = p.JavaVersion.Feature()
	p.Bitness = p.Architecture.Bitness()
	p.LibCType = p.OperatingSystem.LibCType()
	if p.Architecture == ArchARM && p.FPU == FPUNone {
		p.FPU = FPUUnknown
	}
	if p.ReleaseStatus == StatusNone {
		p.ReleaseStatus = StatusGA
	}
	p.TermOfSupport = s.TermOfSupport(p.MajorVersion)
	if p.TCKTested == "" {
		p.TCKTested = VerificationUnknown
	}
	if p.DirectDownloadURI != "" {
		p.DirectlyDownloadable = true
	}

	if !f.Matches(p) {
		return skip(ReasonFilter)
	}
	return nil
}

// Collector accumulates the packages of one Parse call and logs every
// candidate it drops.
type Collector struct {
	distribution Distribution
	filter       Filter
	schedule     *Schedule
	packages     []*Package
	seen         map[string]bool
	newestFirst  bool
}

// NewCollector returns a collector applying f and s.
func NewCollector(d Distribution, f Filter, s *Schedule) *Collector {
	return &Collector{
		distribution: d,
		filter:       f,
		schedule:     s,
		seen:         make(map[string]bool),
	}
}

// Add admits p and appends it. Duplicate keys within one payload are
// dropped silently.
func (c *Collector) Add(p *Package) bool {
	if err := Admit(p, c.filter, c.schedule); err != nil {
		LogSkip(err)
		return false
	}
	if c.seen[p.Key()] {
		return false
	}
	c.seen[p.Key()] = true
	c.packages = append(c.packages, p)
	return true
}

// Skip records that filename was dropped before a record was built.
func (c *Collector) Skip(filename, reason string) {
	LogSkip(&SkipError{Distribution: c.distribution, Filename: filename, Reason: reason})
}

// Packages returns the admitted packages in insertion order.
func (c *Collector) Packages() []*Package {
	return c.packages
}

// LogSkip emits the advisory diagnostic for a dropped candidate.
func LogSkip(err error) {
	var se *SkipError
	if !errors.As(err, &se) {
		slog.Debug("skipping artifact", "error", err)
		return
	}
	slog.Debug("skipping artifact",
		"distribution", se.Distribution,
		"filename", se.Filename,
		"reason", se.Reason)
}
