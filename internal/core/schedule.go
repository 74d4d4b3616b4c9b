package core

// Schedule holds release facts owned by an external major version
// registry. It is read-only once built and safe for concurrent use.
type Schedule struct {
	// NextEA is the lowest feature version without a GA release.
	NextEA int
	// NextButOneEA is the feature version after NextEA.
	NextButOneEA int
	// Terms overrides the default support classification per feature.
	Terms map[int]TermOfSupport
}

// DefaultSchedule returns the schedule as of the 25 GA release.
func DefaultSchedule() *Schedule {
	return &Schedule{NextEA: 26, NextButOneEA: 27}
}

// NewSchedule returns a schedule whose next EA feature is nextEA.
func NewSchedule(nextEA int) *Schedule {
	return &Schedule{NextEA: nextEA, NextButOneEA: nextEA + 1}
}

// IsUpcoming reports whether feature is one of the next two unreleased
// feature versions.
func (s *Schedule) IsUpcoming(feature int) bool {
	if s == nil || feature == 0 {
		return false
	}
	return feature == s.NextEA || feature == s.NextButOneEA
}

// TermOfSupport classifies feature. MTS is always demoted to STS.
func (s *Schedule) TermOfSupport(feature int) TermOfSupport {
	if s != nil {
		if t, ok := s.Terms[feature]; ok {
			return t.Demote()
		}
	}
	return defaultTerm(feature).Demote()
}

// IsLTS reports whether feature is a long term support release.
func (s *Schedule) IsLTS(feature int) bool {
	return s.TermOfSupport(feature) == TermLTS
}

func defaultTerm(feature int) TermOfSupport {
	switch {
	case feature <= 0:
		return TermNone
	case feature >= 6 && feature <= 8, feature == 11:
		return TermLTS
	case feature == 13, feature == 15:
		return TermMTS
	case feature >= 17 && (feature-17)%4 == 0:
		return TermLTS
	default:
		return TermSTS
	}
}
