// Package tenant holds the helpers every store and service uses to keep
// tenants apart.
package tenant

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"
)

var ErrTenantRequired = apperror.InvalidArgument("tenant id is required")

// Require rejects an empty tenant id. Callers check it before any store call.
func Require(tenantID string) error {
	if strings.TrimSpace(tenantID) == "" {
		return ErrTenantRequired
	}
	return nil
}

type ctxKey struct{}

func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, tenantID)
}

func FromContext(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(ctxKey{}).(string)
	return tenantID, ok && tenantID != ""
}
