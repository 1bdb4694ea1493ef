package schemavalidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type image struct {
	ContainerImage string `json:"containerImage" validate:"omitempty,imageRef"`
	FogTypeID      int    `json:"fogTypeId" validate:"fogType"`
}

type item struct {
	Name   string  `json:"name" validate:"notBlank"`
	Images []image `json:"images" validate:"dive"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name   string
		in     item
		fields []string
	}{
		{
			name: "valid",
			in:   item{Name: "sensor", Images: []image{{ContainerImage: "iofog/sensor:1.0", FogTypeID: 1}}},
		},
		{
			name:   "blank name",
			in:     item{Name: "  "},
			fields: []string{"name"},
		},
		{
			name:   "bad image and fog type",
			in:     item{Name: "x", Images: []image{{ContainerImage: "acme/UPPER:1", FogTypeID: 7}}},
			fields: []string{"images[0].containerImage", "images[0].fogTypeId"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ves := Struct(&tt.in)
			if tt.fields == nil {
				assert.Nil(t, ves)
				return
			}
			require.Len(t, ves, len(tt.fields))
			for i, f := range tt.fields {
				assert.Equal(t, f, ves[i].Field)
			}
		})
	}
}

func TestValidImageRef(t *testing.T) {
	assert.True(t, ValidImageRef("iofog/core-networking-arm"))
	assert.True(t, ValidImageRef("registry.example.com:5000/team/app:v2"))
	assert.False(t, ValidImageRef(""))
	assert.False(t, ValidImageRef("Not A Ref"))
}

func TestSchemaValidate(t *testing.T) {
	s := MustCompile(`{
		"type":                 "object",
		"properties":           {"name": {"type": "string"}, "ram": {"type": "integer"}},
		"required":             ["name"],
		"additionalProperties": false
	}`)

	assert.Nil(t, s.Validate([]byte(`{"name": "a", "ram": 1}`)))

	ves := s.Validate([]byte(`{"ram": "lots"}`))
	assert.Len(t, ves, 2)

	ves = s.Validate([]byte(`{"name": "a", "extra": true}`))
	require.Len(t, ves, 1)

	ves = s.Validate([]byte(`{`))
	require.Len(t, ves, 1)
	assert.Contains(t, ves[0].ErrStr, "malformed JSON")
}
