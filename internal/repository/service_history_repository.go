package repository

import (
	"context"
	"database/sql"

	"github.com/elevateassist/va-agency-portal/internal/model"
)

// ServiceHistoryRepo provides access to the 'service_history' table.  Rows
// are written by the task completion consumer and read back on the client
// dashboard; clients never mutate them.
type ServiceHistoryRepo struct{ DB *sql.DB }

func NewServiceHistoryRepo(db *sql.DB) *ServiceHistoryRepo { return &ServiceHistoryRepo{DB: db} }

// CreateTx logs one completed unit of service inside the consumer's
// accounting transaction.
func (r *ServiceHistoryRepo) CreateTx(ctx context.Context, tx *sql.Tx, e *model.ServiceHistoryEntry) error {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO service_history (user_id, service_name, description, hours_used, date, status) VALUES (?,?,?,?,?,?)",
		e.UserID, e.ServiceName, e.Description, e.HoursUsed, e.Date, e.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

// ListByUser returns a client's most recent service entries, newest first.
func (r *ServiceHistoryRepo) ListByUser(ctx context.Context, userID uint64, limit int) ([]model.ServiceHistoryEntry, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, user_id, service_name, description, hours_used, date, status, created_at FROM service_history WHERE user_id=? ORDER BY date DESC LIMIT ?",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.ServiceHistoryEntry
	for rows.Next() {
		var e model.ServiceHistoryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ServiceName, &e.Description, &e.HoursUsed, &e.Date, &e.Status, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// MarkEventProcessed records a consumed event id.  It returns false when
// the id was already recorded, which lets the consumer drop redelivered
// messages without double-charging hours.
func (r *ServiceHistoryRepo) MarkEventProcessed(ctx context.Context, tx *sql.Tx, eventID string) (bool, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT IGNORE INTO processed_events (event_id) VALUES (?)", eventID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
