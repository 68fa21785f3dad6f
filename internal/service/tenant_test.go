package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkmezza/auth-service/internal/domain"
	"github.com/dkmezza/auth-service/internal/model"
	"github.com/dkmezza/auth-service/internal/repository"
)

func newTenantService() *TenantService {
	return NewTenantService(repository.NewMemoryTenantRepository())
}

func TestCreateTenantRecordsCreator(t *testing.T) {
	svc := newTenantService()
	creator := uuid.New()

	tenant, err := svc.Create(context.Background(), "Acme", "ACTIVE", creator)
	require.NoError(t, err)
	assert.Equal(t, "Acme", tenant.Name)
	assert.Equal(t, "ACTIVE", tenant.Status)
	assert.Equal(t, creator, tenant.CreatedBy)
	assert.NotEqual(t, uuid.Nil, tenant.ID)
}

func TestCreateTenantDefaultsStatus(t *testing.T) {
	svc := newTenantService()

	tenant, err := svc.Create(context.Background(), "Acme", "", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.TenantStatusActive, tenant.Status)
}

func TestCreateTenantValidation(t *testing.T) {
	svc := newTenantService()
	ctx := context.Background()

	cases := map[string]struct{ name, status string }{
		"blank name":     {"", "ACTIVE"},
		"name too short": {"A", "ACTIVE"},
		"name too long":  {strings.Repeat("a", 101), "ACTIVE"},
		"unknown status": {"Acme", "PENDING"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, input.name, input.status, uuid.New())
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestCreateTenantDuplicateName(t *testing.T) {
	svc := newTenantService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "Acme", "ACTIVE", uuid.New())
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Acme", "ACTIVE", uuid.New())
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestUpdateTenantKeepsCreator(t *testing.T) {
	svc := newTenantService()
	ctx := context.Background()
	creator := uuid.New()

	tenant, err := svc.Create(ctx, "Acme", "ACTIVE", creator)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, tenant.ID, "Acme Corp", "SUSPENDED")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Equal(t, "SUSPENDED", updated.Status)
	assert.Equal(t, creator, updated.CreatedBy)

	// Status omitted on update keeps the stored value
	updated, err = svc.Update(ctx, tenant.ID, "Acme Corp", "")
	require.NoError(t, err)
	assert.Equal(t, "SUSPENDED", updated.Status)
}

func TestUpdateTenantNotFound(t *testing.T) {
	svc := newTenantService()

	_, err := svc.Update(context.Background(), uuid.New(), "Acme", "ACTIVE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetTenant(t *testing.T) {
	svc := newTenantService()
	ctx := context.Background()

	tenant, err := svc.Create(ctx, "Acme", "ACTIVE", uuid.New())
	require.NoError(t, err)

	found, err := svc.Get(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, found.ID)

	_, err = svc.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteTenantIdempotent(t *testing.T) {
	svc := newTenantService()
	ctx := context.Background()

	tenant, err := svc.Create(ctx, "Acme", "ACTIVE", uuid.New())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, tenant.ID))
	// Second delete of the same id succeeds too
	require.NoError(t, svc.Delete(ctx, tenant.ID))
	// As does deleting an id that never existed
	require.NoError(t, svc.Delete(ctx, uuid.New()))

	_, err = svc.Get(ctx, tenant.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListTenantsNewestFirst(t *testing.T) {
	svc := newTenantService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "First", "ACTIVE", uuid.New())
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Second", "ACTIVE", uuid.New())
	require.NoError(t, err)

	tenants, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	assert.Equal(t, "Second", tenants[0].Name)
	assert.Equal(t, "First", tenants[1].Name)
}
