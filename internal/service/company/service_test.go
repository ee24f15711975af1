package company

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/company"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/tenant"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/payroll-core-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyService(t *testing.T) {
	svc := NewCompanyService(memory.NewCompanyRepository(memory.NewStore()))
	ctx := context.Background()

	acme, err := svc.Create(ctx, "t1", company.CreateCompanyRequest{Name: "  Acme ", Email: "billing@acme.test"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", acme.Name)

	_, err = svc.Create(ctx, "t1", company.CreateCompanyRequest{Name: "Acme"})
	assert.ErrorIs(t, err, company.ErrCompanyNameExists)

	_, err = svc.Create(ctx, "t2", company.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "t1", company.CreateCompanyRequest{Email: "nope"})
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))

	_, err = svc.Create(ctx, "", company.CreateCompanyRequest{Name: "Globex"})
	assert.ErrorIs(t, err, tenant.ErrTenantRequired)

	_, err = svc.Create(ctx, "t1", company.CreateCompanyRequest{Name: "Globex"})
	require.NoError(t, err)

	list, err := svc.List(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Acme", list[0].Name)
	assert.Equal(t, "Globex", list[1].Name)

	_, err = svc.GetByID(ctx, "t2", acme.ID)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "t1", ""), company.ErrCompanyIDRequired)
	require.NoError(t, svc.Delete(ctx, "t1", acme.ID))
	_, err = svc.GetByID(ctx, "t1", acme.ID)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}
