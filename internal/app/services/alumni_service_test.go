package services

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
)

func newAlumniService() *AlumniService {
	return NewAlumniService(repositories.NewAlumniRepository())
}

func createAlumnus(t *testing.T, service *AlumniService, name, email string) int64 {
	t.Helper()
	alumnus, err := service.CreateAlumnus(context.Background(), &dto.CreateAlumnusRequest{
		Name:       name,
		Email:      email,
		Batch:      "2020",
		Department: "Computer Engineering",
	})
	require.NoError(t, err)
	return alumnus.ID
}

func TestCreateAlumnusStoresLowercasedEmail(t *testing.T) {
	service := newAlumniService()

	alumnus, err := service.CreateAlumnus(context.Background(), &dto.CreateAlumnusRequest{
		Name:       "Jane Doe",
		Email:      "Jane@Example.com",
		Batch:      "2020",
		Department: "Computer Engineering",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), alumnus.ID)
	assert.Equal(t, "jane@example.com", alumnus.Email)
	assert.False(t, alumnus.CreatedAt.IsZero())
}

func TestCreateAlumnusRejectsInvalidEmail(t *testing.T) {
	service := newAlumniService()

	_, err := service.CreateAlumnus(context.Background(), &dto.CreateAlumnusRequest{
		Name: "Jane Doe", Email: "bad-email", Batch: "2020", Department: "CE",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid email format", err.Error())
}

func TestCreateAlumnusRejectsDuplicateEmail(t *testing.T) {
	service := newAlumniService()
	createAlumnus(t, service, "Jane Doe", "jane@example.com")

	_, err := service.CreateAlumnus(context.Background(), &dto.CreateAlumnusRequest{
		Name: "Other", Email: "JANE@example.com", Batch: "2021", Department: "CE",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Alumni with this email already exists", err.Error())
}

func TestCreateAlumnusConcurrentDuplicates(t *testing.T) {
	service := newAlumniService()
	ctx := context.Background()

	const workers = 8
	var wins int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := service.CreateAlumnus(ctx, &dto.CreateAlumnusRequest{
				Name: "Jane Doe", Email: "jane@example.com",
				Batch: "2020", Department: "Computer Engineering",
			})
			if err == nil {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
	assert.Len(t, service.ListAlumni(ctx, dto.AlumniFilter{}), 1)
}

func TestUpdateAlumnusAppliesOnlyProvidedFields(t *testing.T) {
	service := newAlumniService()
	id := createAlumnus(t, service, "Jane Doe", "jane@example.com")

	company := "Acme Corp"
	updated, err := service.UpdateAlumnus(context.Background(), id, &dto.UpdateAlumnusRequest{
		CurrentCompany: &company,
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.CurrentCompany)
	// Untouched fields survive the patch
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "2020", updated.Batch)
}

func TestUpdateAlumnusRejectsEmailTakenByAnother(t *testing.T) {
	service := newAlumniService()
	createAlumnus(t, service, "Jane Doe", "jane@example.com")
	id := createAlumnus(t, service, "John Doe", "john@example.com")

	taken := "jane@example.com"
	_, err := service.UpdateAlumnus(context.Background(), id, &dto.UpdateAlumnusRequest{Email: &taken})
	require.Error(t, err)
	assert.Equal(t, "Email already exists for another alumni", err.Error())

	// Re-submitting your own email is not a conflict
	own := "john@example.com"
	_, err = service.UpdateAlumnus(context.Background(), id, &dto.UpdateAlumnusRequest{Email: &own})
	assert.NoError(t, err)
}

func TestUpdateAlumnusNotFound(t *testing.T) {
	service := newAlumniService()

	name := "Nobody"
	_, err := service.UpdateAlumnus(context.Background(), 42, &dto.UpdateAlumnusRequest{Name: &name})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "Alumni not found", err.Error())
}

func TestDeleteAlumnusLeavesIDGap(t *testing.T) {
	service := newAlumniService()
	ctx := context.Background()

	createAlumnus(t, service, "A", "a@example.com")
	second := createAlumnus(t, service, "B", "b@example.com")
	createAlumnus(t, service, "C", "c@example.com")

	require.NoError(t, service.DeleteAlumnus(ctx, second))

	_, err := service.GetAlumnusByID(ctx, second)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	// Deleted ids are never reassigned
	next := createAlumnus(t, service, "D", "d@example.com")
	assert.Equal(t, int64(4), next)

	err = service.DeleteAlumnus(ctx, second)
	assert.Error(t, err)
}

func TestListAlumniFilters(t *testing.T) {
	service := newAlumniService()
	ctx := context.Background()

	_, err := service.CreateAlumnus(ctx, &dto.CreateAlumnusRequest{
		Name: "Jane Doe", Email: "jane@example.com", Batch: "2020",
		Department: "Computer Engineering", CurrentCompany: "Acme Corp",
	})
	require.NoError(t, err)
	_, err = service.CreateAlumnus(ctx, &dto.CreateAlumnusRequest{
		Name: "John Smith", Email: "john@example.com", Batch: "2021",
		Department: "Mechanical Engineering", CurrentCompany: "Globex",
	})
	require.NoError(t, err)

	all := service.ListAlumni(ctx, dto.AlumniFilter{})
	assert.Len(t, all, 2)

	byBatch := service.ListAlumni(ctx, dto.AlumniFilter{Batch: "2020"})
	require.Len(t, byBatch, 1)
	assert.Equal(t, "Jane Doe", byBatch[0].Name)

	byCompany := service.ListAlumni(ctx, dto.AlumniFilter{Company: "glob"})
	require.Len(t, byCompany, 1)
	assert.Equal(t, "John Smith", byCompany[0].Name)

	bySearch := service.ListAlumni(ctx, dto.AlumniFilter{Search: "smith"})
	require.Len(t, bySearch, 1)
	assert.Equal(t, "John Smith", bySearch[0].Name)
}
