package catalogmanager

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// fakeDB keeps catalog items in memory. Methods it does not override panic.
type fakeDB struct {
	db.DB_
	items  map[int64]*models.CatalogItem
	nextID int64
}

func newFakeDB() *fakeDB {
	return &fakeDB{items: map[int64]*models.CatalogItem{}}
}

func (f *fakeDB) CreateCatalogItem(_ context.Context, item *models.CatalogItem) error {
	if item.RegistryID != nil && *item.RegistryID > 100 {
		return dberror.ErrInvalidReference
	}
	f.nextID++
	item.ID = f.nextID
	c := *item
	f.items[item.ID] = &c
	return nil
}

func (f *fakeDB) GetCatalogItem(_ context.Context, id int64) (*models.CatalogItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, dberror.ErrNotFound.Msg("catalog item not found")
	}
	c := *item
	return &c, nil
}

func (f *fakeDB) UpdateCatalogItem(_ context.Context, item *models.CatalogItem) error {
	if _, ok := f.items[item.ID]; !ok {
		return dberror.ErrNotFound
	}
	c := *item
	f.items[item.ID] = &c
	return nil
}

func (f *fakeDB) DeleteCatalogItem(_ context.Context, id int64) error {
	delete(f.items, id)
	return nil
}

func (f *fakeDB) ListCatalogItems(_ context.Context, userID *int64) ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	for _, i := range f.items {
		if userID == nil || i.IsPublic || (i.UserID != nil && *i.UserID == *userID) {
			items = append(items, *i)
		}
	}
	return items, nil
}

func newCtx() (context.Context, *fakeDB) {
	f := newFakeDB()
	ctx := log.Logger.WithContext(context.Background())
	return db.WithDB(ctx, f), f
}

func TestParseCatalogItemSpec(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
		check   func(t *testing.T, s *CatalogItemSpec)
	}{
		{
			name:    "json",
			payload: `{"name": "Sensor", "diskRequired": 20, "isPublic": false,
				"images": [{"containerImage": "iofog/sensor", "fogTypeId": 1}],
				"inputType": {"infoType": "text", "infoFormat": "utf-8"}}`,
			check: func(t *testing.T, s *CatalogItemSpec) {
				assert.Equal(t, "Sensor", *s.Name)
				assert.Equal(t, int64(20), *s.DiskRequired)
				assert.False(t, *s.IsPublic)
				assert.Nil(t, s.RAMRequired)
				require.Len(t, s.Images, 1)
				assert.Equal(t, "utf-8", *s.InputType.InfoFormat)
			},
		},
		{
			name:    "yaml",
			payload: `
name: Sensor
ramRequired: 64
outputType:
  infoType: temperature
`,
			check: func(t *testing.T, s *CatalogItemSpec) {
				assert.Equal(t, int64(64), *s.RAMRequired)
				assert.Equal(t, "temperature", *s.OutputType.InfoType)
				assert.Nil(t, s.OutputType.InfoFormat)
			},
		},
		{name: "empty", payload: ``, wantErr: true},
		{name: "unknown field", payload: `{"name": "a", "color": "red"}`, wantErr: true},
		{name: "wrong type", payload: `{"diskRequired": "big"}`, wantErr: true},
		{name: "bad fog type", payload: `{"images": [{"containerImage": "a", "fogTypeId": 3}]}`, wantErr: true},
		{name: "bad image", payload: `{"images": [{"containerImage": "Bad Image", "fogTypeId": 1}]}`, wantErr: true},
		{name: "duplicate fog type", payload: `{"images": [{"fogTypeId": 1}, {"fogTypeId": 1}]}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseCatalogItemSpec([]byte(tt.payload))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCatalogItem)
				assert.Equal(t, 400, err.StatusCode())
				return
			}
			require.Nil(t, err)
			tt.check(t, s)
		})
	}
}

func TestCreateCatalogItem(t *testing.T) {
	ctx, f := newCtx()
	user := &models.User{ID: 7}

	_, err := CreateCatalogItem(ctx, nil, &CatalogItemSpec{Name: lo.ToPtr("x")})
	assert.ErrorIs(t, err, ErrUserRequired)
	assert.Empty(t, f.items)

	_, err = CreateCatalogItem(ctx, user, &CatalogItemSpec{Category: lo.ToPtr("x")})
	assert.ErrorIs(t, err, ErrInvalidCatalogItem)

	item, err := CreateCatalogItem(ctx, user, &CatalogItemSpec{
		Name: lo.ToPtr("Sensor"),
		Images: []ImageSpec{
			{ContainerImage: lo.ToPtr("iofog/sensor"), FogTypeID: 1},
			{FogTypeID: 2},
		},
	})
	require.Nil(t, err)
	assert.Equal(t, "Sensor", item.Name)
	assert.Equal(t, int64(7), *item.UserID)
	assert.Equal(t, int64(defaultRegistryID), *item.RegistryID)
	assert.Equal(t, defaultPicture, item.Picture)
	// the ARM entry carries no image and is not stored
	assert.Equal(t, []models.CatalogItemImage{{ContainerImage: "iofog/sensor", FogTypeID: 1}}, item.Images)

	_, err = CreateCatalogItem(ctx, user, &CatalogItemSpec{Name: lo.ToPtr("x"), RegistryID: lo.ToPtr(int64(500))})
	assert.ErrorIs(t, err, ErrInvalidRegistry)
}

func TestUpdateCatalogItemMergesOnlySuppliedFields(t *testing.T) {
	ctx, _ := newCtx()
	owner := &models.User{ID: 1}

	item, err := CreateCatalogItem(ctx, owner, &CatalogItemSpec{
		Name:         lo.ToPtr("Sensor"),
		Description:  lo.ToPtr("reads temperature"),
		DiskRequired: lo.ToPtr(int64(10)),
		Images:       []ImageSpec{{ContainerImage: lo.ToPtr("iofog/sensor"), FogTypeID: 1}},
		InputType:    &InfoTypeSpec{InfoType: lo.ToPtr("text"), InfoFormat: lo.ToPtr("utf-8")},
	})
	require.Nil(t, err)

	updated, err := UpdateCatalogItem(ctx, owner, item.ID, &CatalogItemSpec{
		Description: lo.ToPtr("reads humidity"),
		InputType:   &InfoTypeSpec{InfoFormat: lo.ToPtr("ascii")},
	})
	require.Nil(t, err)
	assert.Equal(t, "Sensor", updated.Name)
	assert.Equal(t, "reads humidity", updated.Description)
	assert.Equal(t, int64(10), updated.DiskRequired)
	assert.Equal(t, item.Images, updated.Images)
	assert.Equal(t, "text", updated.InputType.InfoType)
	assert.Equal(t, "ascii", updated.InputType.InfoFormat)

	updated, err = UpdateCatalogItem(ctx, owner, item.ID, &CatalogItemSpec{
		Images: []ImageSpec{{ContainerImage: lo.ToPtr("iofog/sensor-arm"), FogTypeID: 2}},
	})
	require.Nil(t, err)
	assert.Equal(t, []models.CatalogItemImage{{ContainerImage: "iofog/sensor-arm", FogTypeID: 2}}, updated.Images)

	// another user cannot see a private item
	_, err = UpdateCatalogItem(ctx, &models.User{ID: 2}, item.ID, &CatalogItemSpec{Name: lo.ToPtr("mine")})
	assert.ErrorIs(t, err, ErrCatalogItemNotFound)

	_, err = UpdateCatalogItem(ctx, owner, 999, &CatalogItemSpec{Name: lo.ToPtr("x")})
	assert.ErrorIs(t, err, ErrCatalogItemNotFound)
}

func TestUpdateCatalogItemKeepsUnsetImages(t *testing.T) {
	ctx, _ := newCtx()
	owner := &models.User{ID: 1}

	item, err := CreateCatalogItem(ctx, owner, &CatalogItemSpec{
		Name: lo.ToPtr("Sensor"),
		Images: []ImageSpec{
			{ContainerImage: lo.ToPtr("iofog/sensor"), FogTypeID: 1},
			{ContainerImage: lo.ToPtr("iofog/sensor-arm"), FogTypeID: 2},
		},
	})
	require.Nil(t, err)

	// the CLI sends both fog types when only --arm-image is given
	patch := &CatalogItemSpec{Images: []ImageSpec{
		{FogTypeID: 1},
		{ContainerImage: lo.ToPtr("iofog/sensor-arm:2.0"), FogTypeID: 2},
	}}
	updated, err := UpdateCatalogItem(ctx, owner, item.ID, patch)
	require.Nil(t, err)
	assert.Equal(t, []models.CatalogItemImage{
		{ContainerImage: "iofog/sensor", FogTypeID: 1},
		{ContainerImage: "iofog/sensor-arm:2.0", FogTypeID: 2},
	}, updated.Images)
	assert.Nil(t, patch.Images[0].ContainerImage)
}

func TestCatalogItemVisibility(t *testing.T) {
	ctx, _ := newCtx()
	owner := &models.User{ID: 1}
	other := &models.User{ID: 2}

	public, err := CreateCatalogItem(ctx, owner, &CatalogItemSpec{Name: lo.ToPtr("pub"), IsPublic: lo.ToPtr(true)})
	require.Nil(t, err)
	private, err := CreateCatalogItem(ctx, owner, &CatalogItemSpec{Name: lo.ToPtr("priv")})
	require.Nil(t, err)

	_, err = GetCatalogItem(ctx, other, public.ID)
	assert.Nil(t, err)
	_, err = GetCatalogItem(ctx, other, private.ID)
	assert.ErrorIs(t, err, ErrCatalogItemNotFound)

	// public items are still only deletable by their owner
	assert.ErrorIs(t, DeleteCatalogItem(ctx, other, public.ID), ErrCatalogItemNotFound)

	items, err := ListCatalogItems(ctx, other)
	require.Nil(t, err)
	assert.Len(t, items, 1)

	// CLI scope sees and removes everything
	items, err = ListCatalogItems(ctx, nil)
	require.Nil(t, err)
	assert.Len(t, items, 2)
	assert.Nil(t, DeleteCatalogItem(ctx, nil, private.ID))
}

func TestCatalogItemSpecOmitsUnsetFields(t *testing.T) {
	b, err := json.Marshal(&CatalogItemSpec{
		Name:     lo.ToPtr("Sensor"),
		IsPublic: lo.ToPtr(false),
		Images:   []ImageSpec{{FogTypeID: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Sensor","isPublic":false,"images":[{"fogTypeId":2}]}`, string(b))
	assert.False(t, gjson.GetBytes(b, "description").Exists())
}
