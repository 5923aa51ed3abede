package usecase

import (
	"context"
	"testing"

	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePatient_Defaults(t *testing.T) {
	f := newFixture()
	u := f.patientUsecase()

	created, err := u.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		Name:      "Jane Doe",
		Age:       intPtr(0),
		Gender:    "Female",
		Allergies: []string{"Penicillin", " Penicillin ", "", "Latex"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, created.Age)
	assert.Nil(t, created.Email)
	assert.Equal(t, "+1 (555) 000-0000", created.Phone)
	assert.Equal(t, "Address not provided", created.Address)
	assert.Equal(t, "Unknown", created.BloodType)
	assert.Equal(t, "active", created.Status)
	assert.Equal(t, "No insurance", created.Insurance)
	assert.Equal(t, "Emergency Contact", created.EmergencyContact.Name)
	assert.Equal(t, []string{}, created.MedicalHistory)
	assert.Equal(t, []string{"Penicillin", "Latex"}, created.Allergies)
	assert.Nil(t, created.LastVisit)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreatePatient_DuplicateEmail(t *testing.T) {
	f := newFixture()
	f.patients.Seed(entity.Patient{ID: "1", Name: "John", Email: strPtr("john@example.com")})
	u := f.patientUsecase()
	ctx := context.Background()

	_, err := u.CreatePatient(ctx, &dto.CreatePatientRequest{
		Name: "Johnny", Age: intPtr(30), Gender: "Male", Email: "john@example.com",
	})
	assert.ErrorIs(t, err, ErrPatientEmailExists)

	count, _ := f.patients.Count(ctx)
	assert.Equal(t, int64(1), count)

	// patients without email never collide
	for i := 0; i < 2; i++ {
		_, err := u.CreatePatient(ctx, &dto.CreatePatientRequest{Name: "Anon", Age: intPtr(20), Gender: "Male"})
		require.NoError(t, err)
	}
}

func TestUpdatePatient(t *testing.T) {
	f := newFixture()
	f.patients.Seed(
		entity.Patient{ID: "1", Name: "John", Email: strPtr("john@example.com"), Allergies: []string{"Dust"}},
		entity.Patient{ID: "2", Name: "Mary", Email: strPtr("mary@example.com")},
	)
	u := f.patientUsecase()
	ctx := context.Background()

	updated, err := u.UpdatePatient(ctx, &dto.UpdatePatientRequest{
		ID:        "1",
		Age:       intPtr(46),
		Allergies: []string{"Dust", "Dust", "Pollen"},
	})
	require.NoError(t, err)
	assert.Equal(t, 46, updated.Age)
	assert.Equal(t, []string{"Dust", "Pollen"}, updated.Allergies)
	assert.Equal(t, "John", updated.Name)

	_, err = u.UpdatePatient(ctx, &dto.UpdatePatientRequest{ID: "1", Email: strPtr("mary@example.com")})
	assert.ErrorIs(t, err, ErrPatientEmailExists)

	cleared, err := u.UpdatePatient(ctx, &dto.UpdatePatientRequest{ID: "1", Email: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Email)

	_, err = u.UpdatePatient(ctx, &dto.UpdatePatientRequest{ID: "3"})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestDeletePatient(t *testing.T) {
	f := newFixture()
	f.patients.Seed(entity.Patient{ID: "1", Name: "John"}, entity.Patient{ID: "2", Name: "Amy"})
	u := f.patientUsecase()
	ctx := context.Background()

	_, err := u.DeletePatient(ctx, "1")
	require.NoError(t, err)

	list, err := u.ListPatients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Amy", list[0].Name)

	_, err = u.DeletePatient(ctx, "")
	assert.ErrorIs(t, err, ErrPatientIDRequired)
}
