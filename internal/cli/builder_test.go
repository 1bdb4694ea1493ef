package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func given(flags ...string) func(string) bool {
	set := map[string]bool{}
	for _, f := range flags {
		set[f] = true
	}
	return func(f string) bool { return set[f] }
}

func TestBuildCatalogItemSpec(t *testing.T) {
	t.Run("unset flags stay unset", func(t *testing.T) {
		f := &CatalogItemFlags{Name: "sensor", Description: "ignored"}
		spec, err := BuildCatalogItemSpec(f, given("name"))
		require.NoError(t, err)
		assert.Equal(t, "sensor", *spec.Name)
		assert.Nil(t, spec.Description)
		assert.Nil(t, spec.IsPublic)
		assert.Nil(t, spec.Images)
		assert.Nil(t, spec.InputType)
	})

	t.Run("public and private conflict", func(t *testing.T) {
		f := &CatalogItemFlags{Public: true, Private: true}
		_, err := BuildCatalogItemSpec(f, given("public", "private"))
		assert.ErrorIs(t, err, ErrConflictingFlags)
	})

	t.Run("private", func(t *testing.T) {
		f := &CatalogItemFlags{Private: true}
		spec, err := BuildCatalogItemSpec(f, given("private"))
		require.NoError(t, err)
		require.NotNil(t, spec.IsPublic)
		assert.False(t, *spec.IsPublic)
	})

	t.Run("images per fog type", func(t *testing.T) {
		f := &CatalogItemFlags{X86Image: "acme/sensor:1.0"}
		spec, err := BuildCatalogItemSpec(f, given("x86-image"))
		require.NoError(t, err)
		require.Len(t, spec.Images, 2)
		assert.Equal(t, 1, spec.Images[0].FogTypeID)
		assert.Equal(t, "acme/sensor:1.0", *spec.Images[0].ContainerImage)
		assert.Equal(t, 2, spec.Images[1].FogTypeID)
		assert.Nil(t, spec.Images[1].ContainerImage)
	})

	t.Run("input type", func(t *testing.T) {
		f := &CatalogItemFlags{InputType: "temperature", InputFormat: "celsius", OutputFormat: "ignored"}
		spec, err := BuildCatalogItemSpec(f, given("input-type", "input-format", "output-format"))
		require.NoError(t, err)
		require.NotNil(t, spec.InputType)
		assert.Equal(t, "temperature", *spec.InputType.InfoType)
		assert.Equal(t, "celsius", *spec.InputType.InfoFormat)
		assert.Nil(t, spec.OutputType)
	})
}

func TestFlowSpec(t *testing.T) {
	f := &FlowFlags{Name: "pipeline", Deactivate: true}
	spec, err := f.spec(given("name", "deactivate"))
	require.NoError(t, err)
	assert.Equal(t, "pipeline", *spec.Name)
	assert.Nil(t, spec.Description)
	require.NotNil(t, spec.IsActivated)
	assert.False(t, *spec.IsActivated)

	f = &FlowFlags{Activate: true, Deactivate: true}
	_, err = f.spec(given("activate", "deactivate"))
	assert.ErrorIs(t, err, ErrConflictingFlags)
}
