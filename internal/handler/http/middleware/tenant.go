package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/tenant"
	"github.com/cmlabs-hris/payroll-core-go/internal/handler/http/response"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// RequireTenant reads the tenant claim of the verified token and stores it
// in the request context for handlers.
func RequireTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		tenantID, err := jwt.TenantFromClaims(claims)
		if err != nil {
			response.Forbidden(w, err.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(tenant.WithTenant(r.Context(), tenantID)))
	})
}
