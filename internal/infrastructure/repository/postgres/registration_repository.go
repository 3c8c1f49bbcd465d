package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/leaguedesk/leaguedesk/internal/domain/registration"
	qb "github.com/leaguedesk/leaguedesk/internal/platform/querybuilder"
)

type RegistrationRepository struct {
	db *sqlx.DB
}

func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg registration.SportRegistration) error {
	query, args, err := qb.InsertModel("sport_registrations", newRegistrationInsertModel(reg), "")
	if err != nil {
		return fmt.Errorf("build insert registration query: %w", err)
	}

	if _, err := executor(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, registrationID string) (registration.SportRegistration, bool, error) {
	return r.getOne(ctx, qb.Eq("public_id", registrationID))
}

func (r *RegistrationRepository) GetByUserAndSport(ctx context.Context, userID, sportID string) (registration.SportRegistration, bool, error) {
	return r.getOne(ctx, qb.Eq("user_id", userID), qb.Eq("sport_public_id", sportID))
}

func (r *RegistrationRepository) getOne(ctx context.Context, conditions ...qb.Condition) (registration.SportRegistration, bool, error) {
	conditions = append(conditions, qb.IsNull("deleted_at"))
	query, args, err := qb.Select("*").From("sport_registrations").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return registration.SportRegistration{}, false, fmt.Errorf("build get registration query: %w", err)
	}

	var row registrationTableModel
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, args...); err != nil {
		if isNotFound(err) {
			return registration.SportRegistration{}, false, nil
		}
		return registration.SportRegistration{}, false, fmt.Errorf("get registration: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]registration.SportRegistration, error) {
	return r.list(ctx, qb.Eq("user_id", userID))
}

func (r *RegistrationRepository) ListIncompleteByUser(ctx context.Context, userID string) ([]registration.SportRegistration, error) {
	return r.list(ctx, qb.Eq("user_id", userID), qb.Eq("is_complete", false))
}

func (r *RegistrationRepository) ListAll(ctx context.Context) ([]registration.SportRegistration, error) {
	return r.list(ctx)
}

func (r *RegistrationRepository) list(ctx context.Context, conditions ...qb.Condition) ([]registration.SportRegistration, error) {
	conditions = append(conditions, qb.IsNull("deleted_at"))
	// Creation order; the gate relies on it to pick a stable current
	// registration.
	query, args, err := qb.Select("*").From("sport_registrations").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list registrations query: %w", err)
	}

	var rows []registrationTableModel
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	out := make([]registration.SportRegistration, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *RegistrationRepository) Update(ctx context.Context, reg registration.SportRegistration) error {
	query, args, err := qb.Update("sport_registrations").
		Set("roles_mask", int64(reg.Roles.Encode())).
		Set("is_complete", reg.IsComplete).
		Set("updated_at", reg.UpdatedAt).
		Where(
			qb.Eq("public_id", reg.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update registration query: %w", err)
	}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update registration: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("registration %s does not exist", reg.ID)
	}
	return nil
}
