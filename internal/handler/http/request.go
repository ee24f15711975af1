package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/tenant"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a single JSON object into v. Unknown fields are an error.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// tenantID returns the tenant set by middleware.RequireTenant. An empty
// value is rejected by the services.
func tenantID(r *http.Request) string {
	id, _ := tenant.FromContext(r.Context())
	return id
}

func queryPtr(r *http.Request, key string) *string {
	if !r.URL.Query().Has(key) {
		return nil
	}
	v := r.URL.Query().Get(key)
	return &v
}
