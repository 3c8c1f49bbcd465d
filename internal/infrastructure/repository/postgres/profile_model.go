package postgres

import (
	"database/sql"
	"time"

	"github.com/leaguedesk/leaguedesk/internal/domain/profile"
)

type profileTableModel struct {
	ID        int64        `db:"id"`
	PublicID  string       `db:"public_id"`
	UserID    string       `db:"user_id"`
	Gender    string       `db:"gender"`
	Birthday  sql.NullTime `db:"birthday"`
	Height    string       `db:"height"`
	Weight    int          `db:"weight"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
	DeletedAt *time.Time   `db:"deleted_at"`
}

func (m profileTableModel) toDomain() profile.Profile {
	p := profile.Profile{
		ID:        m.PublicID,
		UserID:    m.UserID,
		Gender:    m.Gender,
		Height:    m.Height,
		Weight:    m.Weight,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Birthday.Valid {
		p.Birthday = m.Birthday.Time
	}
	return p
}

type profileInsertModel struct {
	PublicID  string       `db:"public_id"`
	UserID    string       `db:"user_id"`
	Gender    string       `db:"gender"`
	Birthday  sql.NullTime `db:"birthday"`
	Height    string       `db:"height"`
	Weight    int          `db:"weight"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

func newProfileInsertModel(p profile.Profile) profileInsertModel {
	m := profileInsertModel{
		PublicID:  p.ID,
		UserID:    p.UserID,
		Gender:    p.Gender,
		Height:    p.Height,
		Weight:    p.Weight,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if !p.Birthday.IsZero() {
		m.Birthday = sql.NullTime{Time: p.Birthday, Valid: true}
	}
	return m
}
