package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/elevateassist/va-agency-portal/internal/model"
)

// SubscriptionRepo provides access to the 'subscriptions' table.  The
// UNIQUE key on user_id guarantees at most one row per client, so lookups
// by user follow zero-or-one semantics.
type SubscriptionRepo struct{ DB *sql.DB }

func NewSubscriptionRepo(db *sql.DB) *SubscriptionRepo { return &SubscriptionRepo{DB: db} }

var ErrSubscriptionNotFound = errors.New("subscription not found")

const subscriptionCols = "id, user_id, plan, status, price, hours_included, hours_used, billing_cycle, next_billing_date, created_at, updated_at"

// CreateTrialTx inserts the trial subscription created at signup, inside
// the same transaction as the users and profiles rows.
func (r *SubscriptionRepo) CreateTrialTx(ctx context.Context, tx *sql.Tx, userID uint64, plan string, price, hoursIncluded float64) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO subscriptions (user_id, plan, status, price, hours_included) VALUES (?,?,?,?,?)",
		userID, plan, model.SubscriptionTrial, price, hoursIncluded)
	return err
}

// GetByUserID fetches a client's subscription.  Zero rows is reported as
// ErrSubscriptionNotFound; callers that tolerate absence (the dashboard
// defaults) check for it explicitly.
func (r *SubscriptionRepo) GetByUserID(ctx context.Context, userID uint64) (model.Subscription, error) {
	var s model.Subscription
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+subscriptionCols+" FROM subscriptions WHERE user_id=? LIMIT 1",
		userID).Scan(&s.ID, &s.UserID, &s.Plan, &s.Status, &s.Price, &s.HoursIncluded,
		&s.HoursUsed, &s.BillingCycle, &s.NextBillingDate, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return s, ErrSubscriptionNotFound
	}
	return s, err
}

// AdminUpdate mutates the fields exposed on the admin client editor.  This
// is last-write-wins: two concurrent admin edits silently overwrite each
// other, which matches the rest of the write surface.
func (r *SubscriptionRepo) AdminUpdate(ctx context.Context, id uint64, planName, status string, hoursIncluded, price float64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE subscriptions SET plan=?, status=?, hours_included=?, price=? WHERE id=?",
		planName, status, hoursIncluded, price, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.DB.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM subscriptions WHERE id=?)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrSubscriptionNotFound
		}
	}
	return nil
}

// AddHoursUsedTx accrues consumed hours for a client.  Called only by the
// task completion consumer, never from a client-facing handler.
func (r *SubscriptionRepo) AddHoursUsedTx(ctx context.Context, tx *sql.Tx, userID uint64, hours float64) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE subscriptions SET hours_used = hours_used + ? WHERE user_id=?",
		hours, userID)
	return err
}

// Totals aggregates the numbers shown on the admin overview: how many
// subscriptions are live (active or trial), the monthly revenue sum and
// the total hours consumed across all clients.
func (r *SubscriptionRepo) Totals(ctx context.Context) (active int64, revenue, hoursUsed float64, err error) {
	err = r.DB.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(status IN (?,?)), 0),
			COALESCE(SUM(price), 0),
			COALESCE(SUM(hours_used), 0)
		FROM subscriptions`,
		model.SubscriptionActive, model.SubscriptionTrial).Scan(&active, &revenue, &hoursUsed)
	return
}
