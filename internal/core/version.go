package core

import (
	"regexp"
	"strconv"
	"strings"
)

// Component positions of a VersionNumber.
const (
	Feature = iota
	Interim
	Update
	Patch
	Fifth
	Sixth

	numComponents
)

// VersionNumber is a runtime version made of up to six positional
// components plus an independent build number and pre-release marker.
//
// The zero value has no components and is treated as unusable by adapters.
// VersionNumber is a value type; Remap returns modified copies.
type VersionNumber struct {
	comps    [numComponents]int
	present  uint8
	build    int
	hasBuild bool
	pre      string
}

// NewVersionNumber returns a version whose leading components are parts.
// Extra parts beyond the sixth are ignored.
func NewVersionNumber(parts ...int) VersionNumber {
	var v VersionNumber
	for i, p := range parts {
		if i >= numComponents {
			break
		}
		v.comps[i] = p
		v.present |= 1 << i
	}
	return v
}

// VersionNumberFromInts builds a version from a structured JSON array such
// as Azul's java_version.
func VersionNumberFromInts(parts []int64) VersionNumber {
	ints := make([]int, 0, len(parts))
	for _, p := range parts {
		ints = append(ints, int(p))
	}
	return NewVersionNumber(ints...)
}

// Component returns the value at pos and whether it is present.
func (v VersionNumber) Component(pos int) (int, bool) {
	if pos < 0 || pos >= numComponents {
		return 0, false
	}
	return v.comps[pos], v.present&(1<<pos) != 0
}

func (v VersionNumber) get(pos int) int {
	n, _ := v.Component(pos)
	return n
}

// Feature returns the feature (major) number, 0 when absent.
func (v VersionNumber) Feature() int { return v.get(Feature) }

// Interim returns the interim number, 0 when absent.
func (v VersionNumber) Interim() int { return v.get(Interim) }

// Update returns the update number, 0 when absent.
func (v VersionNumber) Update() int { return v.get(Update) }

// Patch returns the patch number, 0 when absent.
func (v VersionNumber) Patch() int { return v.get(Patch) }

// Build returns the build number and whether one was present.
func (v VersionNumber) Build() (int, bool) { return v.build, v.hasBuild }

// PreRelease returns the pre-release marker, e.g. "ea".
func (v VersionNumber) PreRelease() string { return v.pre }

// HasFeature reports whether the feature component is present.
func (v VersionNumber) HasFeature() bool {
	_, ok := v.Component(Feature)
	return ok
}

// IsZero reports whether no component is present.
func (v VersionNumber) IsZero() bool {
	return v.present == 0 && !v.hasBuild && v.pre == ""
}

// Len returns the number of leading components that are present.
func (v VersionNumber) Len() int {
	n := 0
	for n < numComponents && v.present&(1<<n) != 0 {
		n++
	}
	return n
}

// Compare returns -1, 0 or 1. Components are compared left to right with
// absent components counting as 0. A pre-release sorts before the same
// version without one; the build number breaks remaining ties.
func (v VersionNumber) Compare(o VersionNumber) int {
	for i := range numComponents {
		a, b := v.comps[i], o.comps[i]
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}
	switch {
	case v.pre != "" && o.pre == "":
		return -1
	case v.pre == "" && o.pre != "":
		return 1
	}
	switch {
	case v.build < o.build:
		return -1
	case v.build > o.build:
		return 1
	}
	return 0
}

// Equal reports component-wise equality including presence, build and
// pre-release.
func (v VersionNumber) Equal(o VersionNumber) bool {
	return v == o
}

// FeatureEquals compares only the feature component.
func (v VersionNumber) FeatureEquals(o VersionNumber) bool {
	return v.Feature() == o.Feature()
}

// HasPrefix reports whether every component present in prefix is present
// in v with the same value.
func (v VersionNumber) HasPrefix(prefix VersionNumber) bool {
	for i := range numComponents {
		p, ok := prefix.Component(i)
		if !ok {
			continue
		}
		if got, _ := v.Component(i); got != p {
			return false
		}
	}
	return true
}

// String renders the dense leading components, then "-pre", then "+build".
func (v VersionNumber) String() string {
	var b strings.Builder
	for i := range v.Len() {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(v.comps[i]))
	}
	if v.pre != "" {
		b.WriteByte('-')
		b.WriteString(v.pre)
	}
	if v.hasBuild {
		b.WriteByte('+')
		b.WriteString(strconv.Itoa(v.build))
	}
	return b.String()
}

// MarshalText renders the version with String.
func (v VersionNumber) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses text with ParseVersionNumber.
func (v *VersionNumber) UnmarshalText(text []byte) error {
	*v = ParseVersionNumber(string(text))
	return nil
}

var (
	dottedRun  = regexp.MustCompile(`\d+\.\d+`)
	numericRun = regexp.MustCompile(`\d+`)

	legacyDotted = regexp.MustCompile(`^1\.([5-8])\.0(?:_(\d+))?(?:-b(\d+))?`)
	legacyUpdate = regexp.MustCompile(`^([5-8])u(\d+)(?:-?b(\d+))?`)
	modern       = regexp.MustCompile(`^(\d+)((?:\.\d+){0,5})(?:[-_.](ea|beta|alpha|rc|snapshot|internal))?(?:(?:\+b?|_|-b|\.b)(\d+))?(?:-(ea|beta|alpha|rc|snapshot|internal))?`)
)

// ParseVersionNumber extracts the first version-shaped substring of text.
// The first dotted numeric run is preferred over a bare number so that
// brand names like "OpenJDK17U" do not win over "17.0.6". Unparseable input
// yields the zero VersionNumber.
func ParseVersionNumber(text string) VersionNumber {
	start := -1
	if loc := dottedRun.FindStringIndex(text); loc != nil {
		start = loc[0]
	} else if loc := numericRun.FindStringIndex(text); loc != nil {
		start = loc[0]
	}
	if start < 0 {
		return VersionNumber{}
	}
	s := text[start:]

	if m := legacyDotted.FindStringSubmatch(s); m != nil {
		return legacy(m[1], m[2], m[3])
	}
	if m := legacyUpdate.FindStringSubmatch(s); m != nil {
		return legacy(m[1], m[2], m[3])
	}

	m := modern.FindStringSubmatch(s)
	if m == nil {
		return VersionNumber{}
	}
	parts := []int{atoi(m[1])}
	for _, p := range strings.Split(strings.TrimPrefix(m[2], "."), ".") {
		if p != "" {
			parts = append(parts, atoi(p))
		}
	}
	v := NewVersionNumber(parts...)
	// Some vendors tag the pre-release after the build: 17.0.6+10-ea.
	v.pre = m[3]
	if v.pre == "" {
		v.pre = m[5]
	}
	if m[4] != "" {
		v.build = atoi(m[4])
		v.hasBuild = true
	}
	return v
}

func legacy(feature, update, build string) VersionNumber {
	v := NewVersionNumber(atoi(feature), 0)
	if update != "" {
		v = v.Remap(SetComponent(Update, atoi(update)))
	}
	if build != "" {
		v = v.Remap(SetBuild(atoi(build)))
	}
	return v
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
