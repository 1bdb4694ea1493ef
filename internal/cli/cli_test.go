package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/catalogmanager"
	"github.com/mugiliam/fogcontroller/internal/cli/mocks"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/fogmanager"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type harness struct {
	catalog *mocks.MockCatalogService
	fogs    *mocks.MockFogService
	tracks  *mocks.MockTrackService
	users   *mocks.MockUserService
	config  *mocks.MockConfigService

	fs      afero.Fs
	out     bytes.Buffer
	errOut  bytes.Buffer
	opened  int
	openErr error
}

func newHarness(t *testing.T) *harness {
	ctrl := gomock.NewController(t)
	return &harness{
		catalog: mocks.NewMockCatalogService(ctrl),
		fogs:    mocks.NewMockFogService(ctrl),
		tracks:  mocks.NewMockTrackService(ctrl),
		users:   mocks.NewMockUserService(ctrl),
		config:  mocks.NewMockConfigService(ctrl),
		fs:      afero.NewMemMapFs(),
	}
}

func (h *harness) run(args ...string) int {
	app := &App{
		Open: func(ctx context.Context, _ string) (context.Context, *Services, func(), error) {
			h.opened++
			if h.openErr != nil {
				return nil, nil, nil, h.openErr
			}
			return ctx, &Services{
				Catalog: h.catalog,
				Fogs:    h.fogs,
				Tracks:  h.tracks,
				Users:   h.users,
				Config:  h.config,
			}, func() {}, nil
		},
		Fs:  h.fs,
		Out: &h.out,
		Err: &h.errOut,
	}
	return app.Execute(context.Background(), args)
}

func TestCatalogAddResolvesUserFirst(t *testing.T) {
	h := newHarness(t)
	user := &models.User{ID: 7, Email: "owner@example.com"}
	gomock.InOrder(
		h.users.EXPECT().GetUser(gomock.Any(), int64(7)).Return(user, nil),
		h.catalog.EXPECT().CreateCatalogItem(gomock.Any(), user, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *models.User, spec *catalogmanager.CatalogItemSpec) (*models.CatalogItem, error) {
				require.NotNil(t, spec.Name)
				assert.Equal(t, "sensor", *spec.Name)
				require.NotNil(t, spec.IsPublic)
				assert.True(t, *spec.IsPublic)
				assert.Nil(t, spec.Category)
				return &models.CatalogItem{ID: 11, Name: "sensor"}, nil
			}),
	)

	code := h.run("catalog", "add", "-u", "7", "-n", "sensor", "--public")
	assert.Equal(t, 0, code, h.errOut.String())
	assert.Contains(t, h.out.String(), `"name": "sensor"`)
	assert.Equal(t, 1, h.opened)
}

func TestUnknownUserCreatesNothing(t *testing.T) {
	h := newHarness(t)
	h.users.EXPECT().GetUser(gomock.Any(), int64(9)).Return(nil, errors.New("user not found"))

	code := h.run("flow", "add", "--user-id", "9", "-n", "pipeline")
	assert.Equal(t, 1, code)
	assert.Empty(t, h.out.String())
}

func TestCatalogUpdateFromFile(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, afero.WriteFile(h.fs, "/items/sensor.yaml", []byte("name: from file\ncategory: sensors\n"), 0o644))
	h.catalog.EXPECT().UpdateCatalogItem(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, spec *catalogmanager.CatalogItemSpec) (*models.CatalogItem, error) {
			assert.Equal(t, "from file", *spec.Name)
			assert.Equal(t, "sensors", *spec.Category)
			return &models.CatalogItem{ID: 3, Name: "from file"}, nil
		})

	code := h.run("catalog", "update", "-i", "3", "-f", "/items/sensor.yaml")
	assert.Equal(t, 0, code, h.errOut.String())
}

func TestCatalogFileMissing(t *testing.T) {
	h := newHarness(t)
	code := h.run("catalog", "update", "-i", "3", "-f", "/items/missing.json")
	assert.Equal(t, 1, code)
}

func TestConflictingFlags(t *testing.T) {
	h := newHarness(t)
	h.users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)

	code := h.run("registry", "add", "-u", "1", "-U", "registry.example.com", "--public", "--private")
	assert.Equal(t, 1, code)
}

func TestParseError(t *testing.T) {
	h := newHarness(t)
	code := h.run("catalog", "add", "--bogus")
	assert.Equal(t, 1, code)
	assert.Contains(t, h.errOut.String(), "fogctl: error:")
	assert.Zero(t, h.opened)
}

func TestVerbWithoutActionPrintsHelp(t *testing.T) {
	h := newHarness(t)
	code := h.run("iofog")
	assert.Equal(t, 0, code)
	assert.Contains(t, h.out.String(), "provisioning-key")
	assert.Zero(t, h.opened)
}

func TestDatabaseUnavailable(t *testing.T) {
	h := newHarness(t)
	h.openErr = errors.New("connection refused")
	code := h.run("user", "list")
	assert.Equal(t, 1, code)
}

func TestYAMLOutput(t *testing.T) {
	h := newHarness(t)
	h.tracks.EXPECT().ListTracks(gomock.Any()).Return([]models.Track{{ID: 1, Name: "pipeline", IsActivated: true}}, nil)

	code := h.run("-o", "yaml", "flow", "list")
	assert.Equal(t, 0, code, h.errOut.String())
	assert.Contains(t, h.out.String(), "name: pipeline")
	assert.Contains(t, h.out.String(), "isActivated: true")
}

func TestIofogNodeID(t *testing.T) {
	h := newHarness(t)
	code := h.run("iofog", "info", "-i", "not-a-uuid")
	assert.Equal(t, 1, code)

	id := uuid.New()
	h.fogs.EXPECT().UpdateFog(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, spec *fogmanager.FogSpec) (*models.Fog, error) {
			assert.Equal(t, "edge-1", *spec.Name)
			assert.Nil(t, spec.Location)
			return &models.Fog{UUID: id, Name: "edge-1"}, nil
		})
	code = h.run("iofog", "update", "--node-id", id.String(), "-n", "edge-1")
	assert.Equal(t, 0, code, h.errOut.String())
}

func TestConfigAddStoresGivenKeys(t *testing.T) {
	h := newHarness(t)
	h.config.EXPECT().SetConfigValue(gomock.Any(), "port", "51121").Return(nil)
	h.config.EXPECT().SetConfigValue(gomock.Any(), "comsat_host", "comsat.example.com").Return(nil)

	code := h.run("config", "add", "-p", "51121", "--comsat-host", "comsat.example.com")
	assert.Equal(t, 0, code, h.errOut.String())
}

func TestConfigRemoveRejectsUnknownKey(t *testing.T) {
	h := newHarness(t)
	code := h.run("config", "remove", "database")
	assert.Equal(t, 1, code)
	assert.Zero(t, h.opened)
}

func TestUserTokenIsShown(t *testing.T) {
	h := newHarness(t)
	h.users.EXPECT().RegenerateToken(gomock.Any(), int64(4)).
		Return(&models.User{ID: 4, Email: "a@example.com", AccessToken: "tok-123"}, nil)

	code := h.run("user", "generate-token", "-i", "4")
	assert.Equal(t, 0, code, h.errOut.String())
	assert.Contains(t, h.out.String(), `"accessToken": "tok-123"`)
}
