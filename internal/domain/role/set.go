package role

// Mask is the persisted integer encoding of a role set, one bit per role
// in canonical order. It only exists at the storage boundary; business
// logic works with Set.
type Mask int64

// Set is a value object holding a subset of the role vocabulary. The zero
// value is the empty set.
type Set struct {
	mask Mask
}

// NewSet builds a Set from role names. Names that are not in the
// vocabulary are silently dropped; this mirrors the historical encode
// behavior and keeps bulk tooling that sends stale role names working.
func NewSet(names ...string) Set {
	var mask Mask
	for _, name := range names {
		r, ok := Parse(name)
		if !ok {
			continue
		}
		mask |= bit(r)
	}
	return Set{mask: mask}
}

// SetOf builds a Set from already-typed roles.
func SetOf(roles ...Role) Set {
	var mask Mask
	for _, r := range roles {
		if _, ok := Parse(string(r)); !ok {
			continue
		}
		mask |= bit(r)
	}
	return Set{mask: mask}
}

// Decode interprets a stored mask. Bits beyond the known vocabulary are
// ignored, never interpreted: masks written by a future version with more
// roles decode to the subset this version understands.
func Decode(mask Mask) Set {
	var known Mask
	for _, r := range Canonical {
		known |= bit(r)
	}
	return Set{mask: mask & known}
}

// Encode returns the storage representation.
func (s Set) Encode() Mask {
	return s.mask
}

// Roles returns the members in canonical order.
func (s Set) Roles() []Role {
	out := make([]Role, 0, len(Canonical))
	for _, r := range Canonical {
		if s.mask&bit(r) != 0 {
			out = append(out, r)
		}
	}
	return out
}

// Names returns the member names in canonical order.
func (s Set) Names() []string {
	roles := s.Roles()
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

// Has reports membership, matching names case-insensitively.
func (s Set) Has(name string) bool {
	r, ok := Parse(name)
	if !ok {
		return false
	}
	return s.mask&bit(r) != 0
}

// Contains reports membership of a typed role.
func (s Set) Contains(r Role) bool {
	return s.mask&bit(r) != 0
}

// Union returns the set including every member of both sets.
func (s Set) Union(other Set) Set {
	return Set{mask: s.mask | other.mask}
}

// Without returns the set with r removed.
func (s Set) Without(r Role) Set {
	return Set{mask: s.mask &^ bit(r)}
}

// Len returns the member count.
func (s Set) Len() int {
	n := 0
	for _, r := range Canonical {
		if s.mask&bit(r) != 0 {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no roles are held.
func (s Set) IsEmpty() bool {
	return s.mask == 0
}

func bit(r Role) Mask {
	for i, known := range Canonical {
		if known == r {
			return 1 << uint(i)
		}
	}
	return 0
}
