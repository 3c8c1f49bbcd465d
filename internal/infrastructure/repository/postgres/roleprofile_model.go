package postgres

import (
	"time"

	"github.com/leaguedesk/leaguedesk/internal/domain/role"
	"github.com/leaguedesk/leaguedesk/internal/domain/roleprofile"
)

type roleProfileTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	UserID    string     `db:"user_id"`
	SportID   string     `db:"sport_public_id"`
	Role      string     `db:"role"`
	ScopeKind string     `db:"scope_kind"`
	ScopeID   string     `db:"scope_id"`
	IsActive  bool       `db:"is_active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (m roleProfileTableModel) toDomain() roleprofile.Profile {
	return roleprofile.Profile{
		ID:        m.PublicID,
		UserID:    m.UserID,
		SportID:   m.SportID,
		Role:      role.Role(m.Role),
		ScopeKind: role.ScopeKind(m.ScopeKind),
		ScopeID:   m.ScopeID,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type roleProfileInsertModel struct {
	PublicID  string    `db:"public_id"`
	UserID    string    `db:"user_id"`
	SportID   string    `db:"sport_public_id"`
	Role      string    `db:"role"`
	ScopeKind string    `db:"scope_kind"`
	ScopeID   string    `db:"scope_id"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func newRoleProfileInsertModel(p roleprofile.Profile) roleProfileInsertModel {
	return roleProfileInsertModel{
		PublicID:  p.ID,
		UserID:    p.UserID,
		SportID:   p.SportID,
		Role:      p.Role.String(),
		ScopeKind: string(p.ScopeKind),
		ScopeID:   p.ScopeID,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
