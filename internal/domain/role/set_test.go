package role

import (
	"testing"
)

func TestSet_RoundTripAllSubsets(t *testing.T) {
	t.Parallel()

	total := 1 << uint(len(Canonical))
	for subset := 0; subset < total; subset++ {
		want := make([]Role, 0, len(Canonical))
		names := make([]string, 0, len(Canonical))
		for i, r := range Canonical {
			if subset&(1<<uint(i)) != 0 {
				want = append(want, r)
				names = append(names, string(r))
			}
		}

		got := Decode(NewSet(names...).Encode()).Roles()
		if len(got) != len(want) {
			t.Fatalf("subset %b: got %v want %v", subset, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("subset %b: got %v want %v", subset, got, want)
			}
		}
	}
}

func TestNewSet_DropsUnknownNames(t *testing.T) {
	t.Parallel()

	s := NewSet("Player", "Goalie", "Coach", "")
	if s.Len() != 2 {
		t.Fatalf("expected 2 roles, got %v", s.Names())
	}
	if !s.Has("player") || !s.Has("COACH") {
		t.Fatalf("case-insensitive membership failed: %v", s.Names())
	}
	if s.Has("Goalie") {
		t.Fatal("unknown role must not be a member")
	}
}

func TestDecode_IgnoresUnknownBits(t *testing.T) {
	t.Parallel()

	mask := SetOf(Player, Referee).Encode() | (1 << 9) | (1 << 14)
	s := Decode(mask)
	if s.Len() != 2 {
		t.Fatalf("expected 2 roles, got %v", s.Names())
	}
	if s.Encode() != SetOf(Player, Referee).Encode() {
		t.Fatalf("unknown bits leaked into re-encode: %d", s.Encode())
	}
}

func TestSet_RolesCanonicalOrder(t *testing.T) {
	t.Parallel()

	// Grant order must not matter.
	s := NewSet("Scorekeeper", "Coach", "Player")
	got := s.Roles()
	want := []Role{Player, Coach, Scorekeeper}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected canonical order %v, got %v", want, got)
		}
	}
}

func TestRole_Scope(t *testing.T) {
	t.Parallel()

	cases := map[Role]ScopeKind{
		Player:      ScopeTeam,
		Coach:       ScopeTeam,
		Manager:     ScopeTeam,
		Referee:     ScopeLeague,
		Scorekeeper: ScopeSport,
	}
	for r, want := range cases {
		if got := r.Scope(); got != want {
			t.Fatalf("%s: got scope %s want %s", r, got, want)
		}
	}
}

func TestSet_WithoutAndUnion(t *testing.T) {
	t.Parallel()

	s := SetOf(Player, Coach)
	if got := s.Without(Player).Names(); len(got) != 1 || got[0] != "Coach" {
		t.Fatalf("unexpected remainder: %v", got)
	}
	if got := s.Union(SetOf(Referee)).Len(); got != 3 {
		t.Fatalf("unexpected union size: %d", got)
	}
}
