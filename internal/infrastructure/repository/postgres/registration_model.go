package postgres

import (
	"time"

	"github.com/leaguedesk/leaguedesk/internal/domain/registration"
	"github.com/leaguedesk/leaguedesk/internal/domain/role"
)

// registrationTableModel is the storage shape of a sport registration.
// The role set crosses this boundary as its mask encoding and nowhere
// else.
type registrationTableModel struct {
	ID         int64      `db:"id"`
	PublicID   string     `db:"public_id"`
	UserID     string     `db:"user_id"`
	SportID    string     `db:"sport_public_id"`
	RolesMask  int64      `db:"roles_mask"`
	IsComplete bool       `db:"is_complete"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

func (m registrationTableModel) toDomain() registration.SportRegistration {
	return registration.SportRegistration{
		ID:         m.PublicID,
		UserID:     m.UserID,
		SportID:    m.SportID,
		Roles:      role.Decode(role.Mask(m.RolesMask)),
		IsComplete: m.IsComplete,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

type registrationInsertModel struct {
	PublicID   string    `db:"public_id"`
	UserID     string    `db:"user_id"`
	SportID    string    `db:"sport_public_id"`
	RolesMask  int64     `db:"roles_mask"`
	IsComplete bool      `db:"is_complete"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func newRegistrationInsertModel(reg registration.SportRegistration) registrationInsertModel {
	return registrationInsertModel{
		PublicID:   reg.ID,
		UserID:     reg.UserID,
		SportID:    reg.SportID,
		RolesMask:  int64(reg.Roles.Encode()),
		IsComplete: reg.IsComplete,
		CreatedAt:  reg.CreatedAt,
		UpdatedAt:  reg.UpdatedAt,
	}
}
