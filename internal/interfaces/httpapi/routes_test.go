package httpapi

import (
	"testing"

	"github.com/leaguedesk/leaguedesk/internal/domain/role"
)

func TestRoutes_RoleProfileCreatePath(t *testing.T) {
	routes := NewRoutes()

	got := routes.RoleProfileCreatePath("reg-001", role.Coach)
	want := "/v1/registrations/reg-001/roles/coach/profile/new"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if !routes.IsRoleProfileCreatePath(got) {
		t.Fatalf("expected %q to match the role profile create pattern", got)
	}
}

func TestRoutes_IsRoleProfileCreatePath(t *testing.T) {
	routes := NewRoutes()

	tests := []struct {
		path string
		want bool
	}{
		{path: "/v1/registrations/reg-001/roles/referee/profile/new", want: true},
		{path: "/v1/registrations/new", want: false},
		{path: "/v1/profile/new", want: false},
		{path: "/v1/dashboard", want: false},
	}

	for _, tt := range tests {
		if got := routes.IsRoleProfileCreatePath(tt.path); got != tt.want {
			t.Fatalf("IsRoleProfileCreatePath(%q)=%v want=%v", tt.path, got, tt.want)
		}
	}
}
