package changetracker

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/common"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackingDB struct {
	db.DB_
	rows map[uuid.UUID]*models.ChangeTracking
}

func (d *trackingDB) TouchChangeTracking(_ context.Context, ids []uuid.UUID, at int64, categories ...types.ChangeCategory) error {
	for _, id := range ids {
		ct, ok := d.rows[id]
		if !ok {
			continue
		}
		for _, c := range categories {
			switch c {
			case types.ChangeConfig:
				ct.Config = at
			case types.ChangeContainerConfig:
				ct.ContainerConfig = at
			case types.ChangeContainerList:
				ct.ContainerList = at
			case types.ChangeRouting:
				ct.Routing = at
			case types.ChangeRegistries:
				ct.Registries = at
			}
		}
	}
	return nil
}

func (d *trackingDB) GetChangeTracking(_ context.Context, id uuid.UUID) (*models.ChangeTracking, error) {
	ct, ok := d.rows[id]
	if !ok {
		return nil, dberror.ErrNotFound
	}
	c := *ct
	return &c, nil
}

func TestTouchAndSince(t *testing.T) {
	fogA, fogB := uuid.New(), uuid.New()
	store := &trackingDB{rows: map[uuid.UUID]*models.ChangeTracking{
		fogA: {FogUUID: fogA},
		fogB: {FogUUID: fogB},
	}}
	mock := clock.NewMock()
	mock.Set(time.UnixMilli(1_000_000))
	ctx := common.SetClockInContext(db.WithDB(context.Background(), store), mock)

	require.Nil(t, Touch(ctx, []uuid.UUID{fogA, uuid.Nil, fogA}, types.ChangeContainerList, types.ChangeRouting))
	agentPoll := mock.Now().UnixMilli()

	mock.Add(time.Second)
	require.Nil(t, TouchFog(ctx, &fogA, types.ChangeConfig))
	require.Nil(t, TouchFog(ctx, nil, types.ChangeConfig))

	changes, err := Since(ctx, fogA, agentPoll)
	require.Nil(t, err)
	assert.Equal(t, &Changes{Config: true}, changes)

	changes, err = Since(ctx, fogA, 0)
	require.Nil(t, err)
	assert.Equal(t, &Changes{Config: true, ContainerList: true, Routing: true}, changes)

	changes, err = Since(ctx, fogB, 0)
	require.Nil(t, err)
	assert.Equal(t, &Changes{}, changes)

	_, err = Since(ctx, uuid.New(), 0)
	assert.ErrorIs(t, err, ErrNotTracked)
}

func TestCompareIsStrict(t *testing.T) {
	ct := &models.ChangeTracking{Config: 100, Registries: 101}
	c := Compare(ct, 100)
	assert.False(t, c.Config)
	assert.True(t, c.Registries)
}
