package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const timeOffColumns = `id, tenant_id, employee_id, employee_name, leave_type, leave_from, leave_to,
		days, status, created_at, updated_at`

type timeOffRepositoryImpl struct {
	db *database.DB
}

func NewTimeOffRepository(db *database.DB) timeoff.TimeOffRepository {
	return &timeOffRepositoryImpl{db: db}
}

func scanTimeOff(row pgx.Row) (timeoff.Request, error) {
	var t timeoff.Request
	err := row.Scan(
		&t.ID, &t.TenantID, &t.EmployeeID, &t.EmployeeName, &t.LeaveType, &t.LeaveFrom, &t.LeaveTo,
		&t.Days, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Create implements timeoff.TimeOffRepository.
func (r *timeOffRepositoryImpl) Create(ctx context.Context, req timeoff.Request) (timeoff.Request, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return timeoff.Request{}, fmt.Errorf("failed to generate time-off id: %w", err)
	}

	query := `
		INSERT INTO time_off_requests (
			id, tenant_id, employee_id, employee_name, leave_type, leave_from, leave_to, days, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + timeOffColumns

	created, err := scanTimeOff(q.QueryRow(ctx, query,
		id, req.TenantID, req.EmployeeID, req.EmployeeName, req.LeaveType,
		req.LeaveFrom, req.LeaveTo, req.Days, req.Status,
	))
	if err != nil {
		return timeoff.Request{}, fmt.Errorf("failed to create time-off request: %w", err)
	}
	return created, nil
}

// GetByID implements timeoff.TimeOffRepository.
func (r *timeOffRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (timeoff.Request, error) {
	if !validID(id) {
		return timeoff.Request{}, timeoff.ErrTimeOffNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + timeOffColumns + " FROM time_off_requests WHERE id = $1 AND tenant_id = $2"

	t, err := scanTimeOff(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeoff.Request{}, timeoff.ErrTimeOffNotFound
		}
		return timeoff.Request{}, fmt.Errorf("failed to get time-off request by id %s: %w", id, err)
	}
	return t, nil
}

// List implements timeoff.TimeOffRepository.
func (r *timeOffRepositoryImpl) List(ctx context.Context, tenantID string, filter timeoff.TimeOffFilter) ([]timeoff.Request, error) {
	requests := []timeoff.Request{}
	if filter.EmployeeID != nil && !validID(*filter.EmployeeID) {
		return requests, nil
	}
	q := GetQuerier(ctx, r.db)

	where := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	argIdx := 2

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*filter.Status))
		argIdx++
	}

	query := "SELECT " + timeOffColumns + " FROM time_off_requests " + where + " ORDER BY created_at DESC, id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time-off requests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		t, err := scanTimeOff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time-off request: %w", err)
		}
		requests = append(requests, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateStatus implements timeoff.TimeOffRepository.
func (r *timeOffRepositoryImpl) UpdateStatus(ctx context.Context, tenantID string, id string, status timeoff.Status) (timeoff.Request, error) {
	if !validID(id) {
		return timeoff.Request{}, timeoff.ErrTimeOffNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_off_requests SET status = $3, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND status = $4
		RETURNING ` + timeOffColumns

	t, err := scanTimeOff(q.QueryRow(ctx, query, id, tenantID, string(status), string(timeoff.StatusPending)))
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return timeoff.Request{}, fmt.Errorf("failed to update time-off status for id %s: %w", id, err)
	}

	// Nothing matched: either the request is missing or it already left Pending.
	if _, err := r.GetByID(ctx, tenantID, id); err != nil {
		return timeoff.Request{}, err
	}
	return timeoff.Request{}, timeoff.ErrInvalidTransition
}

// Delete implements timeoff.TimeOffRepository.
func (r *timeOffRepositoryImpl) Delete(ctx context.Context, tenantID string, id string) error {
	if !validID(id) {
		return timeoff.ErrTimeOffNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM time_off_requests WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete time-off request with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return timeoff.ErrTimeOffNotFound
	}
	return nil
}
