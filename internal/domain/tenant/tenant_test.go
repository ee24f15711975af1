package tenant

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

func TestRequire(t *testing.T) {
	assert.NoError(t, Require("tenant-a"))
	assert.ErrorIs(t, Require(""), ErrTenantRequired)
	assert.ErrorIs(t, Require("   "), ErrTenantRequired)
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(Require("")))
}

func TestContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := FromContext(ctx)
	assert.False(t, ok)

	got, ok := FromContext(WithTenant(ctx, "tenant-a"))
	assert.True(t, ok)
	assert.Equal(t, "tenant-a", got)

	_, ok = FromContext(WithTenant(ctx, ""))
	assert.False(t, ok)
}
