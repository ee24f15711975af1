package timeoff

import "context"

// TimeOffService runs the approval ledger: requests start Pending and are
// approved or rejected exactly once.
type TimeOffService interface {
	// Submit creates a Pending request for an employee of the tenant.
	Submit(ctx context.Context, tenantID string, req SubmitTimeOffRequest) (TimeOffResponse, error)

	Approve(ctx context.Context, tenantID string, id string) (TimeOffResponse, error)
	Reject(ctx context.Context, tenantID string, id string) (TimeOffResponse, error)
	SetStatus(ctx context.Context, tenantID string, req SetStatusRequest) (TimeOffResponse, error)

	Get(ctx context.Context, tenantID string, id string) (TimeOffResponse, error)
	List(ctx context.Context, tenantID string, filter TimeOffFilter) ([]TimeOffResponse, error)

	// Delete removes an approved or rejected request.
	Delete(ctx context.Context, tenantID string, id string) error
}
