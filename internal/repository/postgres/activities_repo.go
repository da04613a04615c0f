package postgres

import (
	"context"
	"fmt"

	"github.com/baharkarakas/minivenmo/internal/models"
	"github.com/shopspring/decimal"
)

type activitiesRepo struct{ q querier }

func (r *activitiesRepo) Create(ctx context.Context, a *models.Activity) error {
	var amount decimal.NullDecimal
	if a.Amount != nil {
		amount = decimal.NewNullDecimal(*a.Amount)
	}
	err := r.q.QueryRow(ctx,
		`INSERT INTO activities(type, actor_id, target_id, amount, description, created_at)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING id`,
		string(a.Type), a.ActorID, a.TargetID, amount, a.Description, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

const activityViewSelect = `
SELECT a.id, a.type, a.actor_id, a.target_id, a.amount, a.description, a.created_at,
       actor.name, COALESCE(target.name, '')
  FROM activities a
  JOIN users actor ON actor.id = a.actor_id
  LEFT JOIN users target ON target.id = a.target_id`

const activityOrder = ` ORDER BY a.created_at DESC, a.id DESC`

func (r *activitiesRepo) ListInvolving(ctx context.Context, userIDs []string) ([]models.ActivityView, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx,
		activityViewSelect+` WHERE a.actor_id = ANY($1) OR a.target_id = ANY($1)`+activityOrder,
		userIDs)
}

func (r *activitiesRepo) ListAll(ctx context.Context) ([]models.ActivityView, error) {
	return r.list(ctx, activityViewSelect+activityOrder)
}

func (r *activitiesRepo) list(ctx context.Context, q string, args ...any) ([]models.ActivityView, error) {
	rows, err := r.q.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var out []models.ActivityView
	for rows.Next() {
		var (
			v      models.ActivityView
			typ    string
			amount decimal.NullDecimal
		)
		if err := rows.Scan(&v.ID, &typ, &v.ActorID, &v.TargetID, &amount, &v.Description,
			&v.CreatedAt, &v.ActorName, &v.TargetName); err != nil {
			return nil, err
		}
		v.Type = models.ActivityType(typ)
		if amount.Valid {
			v.Amount = &amount.Decimal
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
