package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/leaguedesk/leaguedesk/internal/domain/profile"
	qb "github.com/leaguedesk/leaguedesk/internal/platform/querybuilder"
)

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Exists(ctx context.Context, userID string) (bool, error) {
	query, args, err := qb.Select("1").From("profiles").
		Where(
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build profile exists query: %w", err)
	}

	var one int
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check profile existence: %w", err)
	}
	return true, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (profile.Profile, bool, error) {
	query, args, err := qb.Select("*").From("profiles").
		Where(
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("build get profile query: %w", err)
	}

	var row profileTableModel
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, args...); err != nil {
		if isNotFound(err) {
			return profile.Profile{}, false, nil
		}
		return profile.Profile{}, false, fmt.Errorf("get profile: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *ProfileRepository) Create(ctx context.Context, p profile.Profile) error {
	query, args, err := qb.InsertModel("profiles", newProfileInsertModel(p), "")
	if err != nil {
		return fmt.Errorf("build insert profile query: %w", err)
	}

	if _, err := executor(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}
