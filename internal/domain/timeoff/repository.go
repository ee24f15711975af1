package timeoff

import "context"

// TimeOffRepository defines data access methods for time-off requests.
// All methods include tenantID parameter to prevent cross-tenant data access.
type TimeOffRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, tenantID string, id string) (Request, error)
	List(ctx context.Context, tenantID string, filter TimeOffFilter) ([]Request, error)

	// UpdateStatus moves a Pending request to status in a single
	// conditional write. It returns ErrInvalidTransition when the request
	// exists but is no longer Pending.
	UpdateStatus(ctx context.Context, tenantID string, id string, status Status) (Request, error)
	Delete(ctx context.Context, tenantID string, id string) error
}
