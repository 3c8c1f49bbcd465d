package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/leaguedesk/leaguedesk/internal/domain/sport"
	qb "github.com/leaguedesk/leaguedesk/internal/platform/querybuilder"
)

type SportRepository struct {
	db *sqlx.DB
}

func NewSportRepository(db *sqlx.DB) *SportRepository {
	return &SportRepository{db: db}
}

func (r *SportRepository) List(ctx context.Context) ([]sport.Sport, error) {
	query, args, err := qb.Select("*").From("sports").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select sports query: %w", err)
	}

	var rows []sportTableModel
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select sports: %w", err)
	}

	out := make([]sport.Sport, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *SportRepository) GetByID(ctx context.Context, sportID string) (sport.Sport, bool, error) {
	query, args, err := qb.Select("*").From("sports").
		Where(
			qb.Eq("public_id", sportID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return sport.Sport{}, false, fmt.Errorf("build get sport by id query: %w", err)
	}

	var row sportTableModel
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, args...); err != nil {
		if isNotFound(err) {
			return sport.Sport{}, false, nil
		}
		return sport.Sport{}, false, fmt.Errorf("get sport by id: %w", err)
	}

	return row.toDomain(), true, nil
}
