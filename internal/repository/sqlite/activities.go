package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/minivenmo/internal/models"
)

type activitiesRepo struct{ q dbtx }

func (r *activitiesRepo) Create(ctx context.Context, a *models.Activity) error {
	var amount sql.NullString
	if a.Amount != nil {
		amount = sql.NullString{String: a.Amount.String(), Valid: true}
	}
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO activities (type, actor_id, target_id, amount, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(a.Type), a.ActorID, nullString(a.TargetID), amount, nullString(a.Description), toUnix(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	if a.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read activity id: %w", err)
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
	in := placeholders(len(userIDs))
	args := append(stringArgs(userIDs), stringArgs(userIDs)...)
	return r.list(ctx,
		activityViewSelect+" WHERE a.actor_id IN ("+in+") OR a.target_id IN ("+in+")"+activityOrder,
		args...)
}

func (r *activitiesRepo) ListAll(ctx context.Context) ([]models.ActivityView, error) {
	return r.list(ctx, activityViewSelect+activityOrder)
}

func (r *activitiesRepo) list(ctx context.Context, q string, args ...any) ([]models.ActivityView, error) {
	rows, err := r.q.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var out []models.ActivityView
	for rows.Next() {
		var (
			v           models.ActivityView
			typ         string
			target      sql.NullString
			amount      decimal.NullDecimal
			description sql.NullString
			created     int64
		)
		if err := rows.Scan(&v.ID, &typ, &v.ActorID, &target, &amount, &description,
			&created, &v.ActorName, &v.TargetName); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		v.Type = models.ActivityType(typ)
		v.CreatedAt = fromUnix(created)
		if target.Valid {
			v.TargetID = &target.String
		}
		if amount.Valid {
			v.Amount = &amount.Decimal
		}
		if description.Valid {
			v.Description = &description.String
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activities: %w", err)
	}
	return out, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
