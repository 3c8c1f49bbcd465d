package postgres

import (
	"time"

	"github.com/leaguedesk/leaguedesk/internal/domain/sport"
)

type sportTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	Name        string     `db:"name"`
	Slug        string     `db:"slug"`
	Description string     `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

func (m sportTableModel) toDomain() sport.Sport {
	return sport.Sport{
		ID:          m.PublicID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}
