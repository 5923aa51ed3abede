package repository

import (
	"context"
	"errors"
	"testing"

	"go-medical-frontdesk/internal/domain/entity"
	domainRepo "go-medical-frontdesk/internal/domain/repository"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDoctorStore(opts ...StoreOption) *MemoryStore[entity.Doctor] {
	return NewMemoryStore(func(d *entity.Doctor) *string { return &d.ID }, opts...)
}

func doctorIDs(doctors []entity.Doctor) []string {
	ids := make([]string, len(doctors))
	for i, d := range doctors {
		ids[i] = d.ID
	}
	return ids
}

func TestMemoryStore_InsertAssignsSequentialIDs(t *testing.T) {
	store := newDoctorStore()

	first := store.Insert(entity.Doctor{Name: "A"})
	second := store.Insert(entity.Doctor{Name: "B"})

	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "2", second.ID)
	assert.Equal(t, []string{"1", "2"}, doctorIDs(store.List()))
}

func TestMemoryStore_SeedAdvancesSequence(t *testing.T) {
	store := newDoctorStore()
	store.Seed(entity.Doctor{ID: "1"}, entity.Doctor{ID: "5"})

	created := store.Insert(entity.Doctor{Name: "C"})

	assert.Equal(t, "6", created.ID)
}

func TestMemoryStore_IDsNeverRepeatAfterDelete(t *testing.T) {
	store := newDoctorStore()
	store.Seed(entity.Doctor{ID: "1"}, entity.Doctor{ID: "2"}, entity.Doctor{ID: "3"})

	_, err := store.Remove("1")
	require.NoError(t, err)
	created := store.Insert(entity.Doctor{Name: "D"})

	assert.Equal(t, "4", created.ID)
	assert.Equal(t, []string{"2", "3", "4"}, doctorIDs(store.List()))
}

func TestMemoryStore_LegacyIDsReproduceCollision(t *testing.T) {
	store := newDoctorStore(WithLegacyIDs(true))
	store.Seed(entity.Doctor{ID: "1"}, entity.Doctor{ID: "2"}, entity.Doctor{ID: "3"})

	_, err := store.Remove("1")
	require.NoError(t, err)
	created := store.Insert(entity.Doctor{Name: "D"})

	// len+1 after a delete reuses an id that is still present
	assert.Equal(t, "3", created.ID)
	assert.Equal(t, []string{"2", "3", "3"}, doctorIDs(store.List()))

	// lookups resolve to the first match
	found, ok := store.Get("3")
	require.True(t, ok)
	assert.Empty(t, found.Name)
}

func TestMemoryStore_ReplaceAndRemoveMissing(t *testing.T) {
	store := newDoctorStore()
	store.Seed(entity.Doctor{ID: "1", Name: "A"})

	err := store.Replace(entity.Doctor{ID: "9", Name: "Z"})
	assert.ErrorIs(t, err, domainRepo.ErrRecordNotFound)

	_, err = store.Remove("9")
	assert.ErrorIs(t, err, domainRepo.ErrRecordNotFound)

	assert.Equal(t, 1, store.Len())
	got, _ := store.Get("1")
	assert.Equal(t, "A", got.Name)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := newDoctorStore()
	store.Seed(entity.Doctor{ID: "1", Name: "A", Schedule: entity.DefaultWeeklySchedule()})

	listed := store.List()
	listed[0].Name = "mutated"
	delete(listed[0].Schedule, "monday")

	got, ok := store.Get("1")
	require.True(t, ok)
	assert.Equal(t, "A", got.Name)
	assert.Contains(t, got.Schedule, "monday")
}

func TestMemoryStore_Move(t *testing.T) {
	store := newDoctorStore()
	store.Seed(entity.Doctor{ID: "1"}, entity.Doctor{ID: "2"}, entity.Doctor{ID: "3"})

	require.NoError(t, store.Move("2", -1))
	assert.Equal(t, []string{"2", "1", "3"}, doctorIDs(store.List()))

	require.NoError(t, store.Move("2", -1))
	assert.Equal(t, []string{"2", "1", "3"}, doctorIDs(store.List()))

	require.NoError(t, store.Move("3", 1))
	assert.Equal(t, []string{"2", "1", "3"}, doctorIDs(store.List()))

	assert.ErrorIs(t, store.Move("7", 1), domainRepo.ErrRecordNotFound)
}

func TestQueueMemoryRepository_FormatsIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewQueueMemoryRepository()
	repo.Seed(entity.QueueItem{ID: "Q001"}, entity.QueueItem{ID: "Q002"})

	item := &entity.QueueItem{PatientName: "Walk In"}
	require.NoError(t, repo.Create(ctx, item))

	assert.Equal(t, "Q003", item.ID)
	found, err := repo.FindByID(ctx, "Q003")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Walk In", found.PatientName)

	missing, err := repo.FindByID(ctx, "Q404")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDoctorMemoryRepository_FindByEmailIsExact(t *testing.T) {
	ctx := context.Background()
	repo := NewDoctorMemoryRepository()
	repo.Seed(entity.Doctor{ID: "1", Email: "x@y.com"})

	found, err := repo.FindByEmail(ctx, "x@y.com")
	require.NoError(t, err)
	assert.NotNil(t, found)

	found, err = repo.FindByEmail(ctx, "X@Y.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestAuditLogMemoryRepository_RecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewAuditLogMemoryRepository(3)

	for _, action := range []string{"a", "b", "c", "d"} {
		require.NoError(t, repo.Create(ctx, &entity.AuditLog{Action: action}))
	}

	logs, err := repo.FindRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "d", logs[0].Action)
	assert.Equal(t, "b", logs[2].Action)
	assert.Equal(t, int64(4), logs[0].ID)

	logs, err = repo.FindRecent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestTranslateError_DetectsDuplicateKeys(t *testing.T) {
	tests := []struct {
		name string
		err  error
		dup  bool
	}{
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"postgres other", &pgconn.PgError{Code: "23503"}, false},
		{"mysql duplicate entry", &mysql.MySQLError{Number: 1062}, true},
		{"mysql other", &mysql.MySQLError{Number: 1452}, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateError(tt.err)
			assert.Equal(t, tt.dup, errors.Is(err, domainRepo.ErrDuplicateKey))
		})
	}

	assert.NoError(t, translateError(nil))
}
