package usecase

import (
	"context"
	"testing"

	"go-medical-frontdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActivity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for i := 0; i < 30; i++ {
		require.NoError(t, f.audit.LogEvent(ctx, entity.AuditActionDoctorUpdate, "doctor", "1", nil))
	}
	u := NewAuditLogUsecase(f.log, f.audit)

	list, err := u.ListActivity(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, list.Total)
	assert.Equal(t, int64(30), list.Logs[0].ID)

	list, err = u.ListActivity(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, list.Logs, 5)

	list, err = u.ListActivity(ctx, 1000)
	require.NoError(t, err)
	assert.Len(t, list.Logs, 30)
}
