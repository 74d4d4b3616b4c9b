package core

// Remap is a vendor-specific correction applied to a freshly parsed
// VersionNumber. Vendors encode the same facts in different slots; each
// adapter documents the rules it applies.
type Remap func(VersionNumber) VersionNumber

// Remap applies rules in order and returns the result.
func (v VersionNumber) Remap(rules ...Remap) VersionNumber {
	for _, r := range rules {
		v = r(v)
	}
	return v
}

// SetComponent sets the component at pos. Missing lower components are
// filled with zero so the result stays dense.
func SetComponent(pos, n int) Remap {
	return func(v VersionNumber) VersionNumber {
		if pos < 0 || pos >= numComponents {
			return v
		}
		for i := 0; i < pos; i++ {
			v.present |= 1 << i
		}
		v.comps[pos] = n
		v.present |= 1 << pos
		return v
	}
}

// SetInterim sets the interim component.
func SetInterim(n int) Remap { return SetComponent(Interim, n) }

// SetPatch sets the patch component.
func SetPatch(n int) Remap { return SetComponent(Patch, n) }

// SetFifth sets the fifth component.
func SetFifth(n int) Remap { return SetComponent(Fifth, n) }

// SetSixth sets the sixth component.
func SetSixth(n int) Remap { return SetComponent(Sixth, n) }

// SetBuild sets the build number.
func SetBuild(n int) Remap {
	return func(v VersionNumber) VersionNumber {
		v.build = n
		v.hasBuild = true
		return v
	}
}

// ClearBuild removes the build number.
func ClearBuild() Remap {
	return func(v VersionNumber) VersionNumber {
		v.build = 0
		v.hasBuild = false
		return v
	}
}

// ClearPreRelease removes the pre-release marker.
func ClearPreRelease() Remap {
	return func(v VersionNumber) VersionNumber {
		v.pre = ""
		return v
	}
}

// SetPreRelease sets the pre-release marker.
func SetPreRelease(pre string) Remap {
	return func(v VersionNumber) VersionNumber {
		v.pre = pre
		return v
	}
}

// ZeroFrom keeps components at and after pos present but sets them to 0.
// Only components that are already present are touched.
func ZeroFrom(pos int) Remap {
	return func(v VersionNumber) VersionNumber {
		for i := max(pos, 0); i < numComponents; i++ {
			if v.present&(1<<i) != 0 {
				v.comps[i] = 0
			}
		}
		return v
	}
}

// TruncateAt drops components at and after pos.
func TruncateAt(pos int) Remap {
	return func(v VersionNumber) VersionNumber {
		for i := max(pos, 0); i < numComponents; i++ {
			v.comps[i] = 0
			v.present &^= 1 << i
		}
		return v
	}
}

// BuildFromComponent moves the component at pos into the build number and
// truncates the version there.
func BuildFromComponent(pos int) Remap {
	return func(v VersionNumber) VersionNumber {
		n, ok := v.Component(pos)
		if !ok {
			return v
		}
		v = TruncateAt(pos)(v)
		return SetBuild(n)(v)
	}
}

// ShiftDown removes the component at pos and moves every later component
// one slot towards the feature end.
func ShiftDown(pos int) Remap {
	return func(v VersionNumber) VersionNumber {
		if pos < 0 || pos >= numComponents {
			return v
		}
		var out VersionNumber
		out.build, out.hasBuild, out.pre = v.build, v.hasBuild, v.pre
		j := 0
		for i := range numComponents {
			if i == pos {
				continue
			}
			if n, ok := v.Component(i); ok {
				out.comps[j] = n
				out.present |= 1 << j
			}
			j++
		}
		return out
	}
}
