package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/leaguedesk/leaguedesk/internal/domain/role"
	"github.com/leaguedesk/leaguedesk/internal/domain/roleprofile"
	qb "github.com/leaguedesk/leaguedesk/internal/platform/querybuilder"
)

type RoleProfileRepository struct {
	db *sqlx.DB
}

func NewRoleProfileRepository(db *sqlx.DB) *RoleProfileRepository {
	return &RoleProfileRepository{db: db}
}

func (r *RoleProfileRepository) Create(ctx context.Context, p roleprofile.Profile) error {
	query, args, err := qb.InsertModel("role_profiles", newRoleProfileInsertModel(p), "")
	if err != nil {
		return fmt.Errorf("build insert role profile query: %w", err)
	}

	if _, err := executor(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert role profile: %w", err)
	}
	return nil
}

func (r *RoleProfileRepository) GetByID(ctx context.Context, profileID string) (roleprofile.Profile, bool, error) {
	query, args, err := qb.Select("*").From("role_profiles").
		Where(
			qb.Eq("public_id", profileID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return roleprofile.Profile{}, false, fmt.Errorf("build get role profile query: %w", err)
	}

	var row roleProfileTableModel
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, args...); err != nil {
		if isNotFound(err) {
			return roleprofile.Profile{}, false, nil
		}
		return roleprofile.Profile{}, false, fmt.Errorf("get role profile: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *RoleProfileRepository) ListActive(ctx context.Context, userID, sportID string, rr role.Role, filter roleprofile.ScopeFilter) ([]roleprofile.Profile, error) {
	conditions := []qb.Condition{
		qb.Eq("user_id", userID),
		qb.Eq("sport_public_id", sportID),
		qb.Eq("role", rr.String()),
		qb.Eq("is_active", true),
		qb.IsNull("deleted_at"),
	}
	if filter.ScopeID != "" {
		conditions = append(conditions, qb.Eq("scope_id", filter.ScopeID))
	}

	query, args, err := qb.Select("*").From("role_profiles").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list active role profiles query: %w", err)
	}

	var rows []roleProfileTableModel
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list active role profiles: %w", err)
	}

	out := make([]roleprofile.Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *RoleProfileRepository) Update(ctx context.Context, p roleprofile.Profile) error {
	query, args, err := qb.Update("role_profiles").
		Set("is_active", p.IsActive).
		Set("scope_id", p.ScopeID).
		Set("updated_at", p.UpdatedAt).
		Where(
			qb.Eq("public_id", p.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update role profile query: %w", err)
	}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update role profile: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("role profile %s does not exist", p.ID)
	}
	return nil
}
