package catalogmanager

import (
	"encoding/json"

	"github.com/mugiliam/fogcontroller/internal/apperrors"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/schemavalidator"
	"github.com/samber/lo"
	"sigs.k8s.io/yaml"
)

// CatalogItemSpec is the request payload for creating or updating a catalog
// item. Unset fields are nil and never serialized.
type CatalogItemSpec struct {
	Name          *string       `json:"name,omitempty" validate:"omitempty,notBlank"`
	Description   *string       `json:"description,omitempty"`
	Category      *string       `json:"category,omitempty"`
	ConfigExample *string       `json:"configExample,omitempty"`
	Publisher     *string       `json:"publisher,omitempty"`
	DiskRequired  *int64        `json:"diskRequired,omitempty" validate:"omitempty,min=0"`
	RAMRequired   *int64        `json:"ramRequired,omitempty" validate:"omitempty,min=0"`
	Picture       *string       `json:"picture,omitempty"`
	IsPublic      *bool         `json:"isPublic,omitempty"`
	RegistryID    *int64        `json:"registryId,omitempty" validate:"omitempty,min=1"`
	Images        []ImageSpec   `json:"images,omitempty" validate:"omitempty,max=2,unique=FogTypeID,dive"`
	InputType     *InfoTypeSpec `json:"inputType,omitempty"`
	OutputType    *InfoTypeSpec `json:"outputType,omitempty"`
}

type ImageSpec struct {
	ContainerImage *string `json:"containerImage,omitempty" validate:"omitempty,imageRef"`
	FogTypeID      int     `json:"fogTypeId" validate:"fogType,min=1"`
}

type InfoTypeSpec struct {
	InfoType   *string `json:"infoType,omitempty"`
	InfoFormat *string `json:"infoFormat,omitempty"`
}

const catalogItemSchema = `{
	"type": "object",
	"definitions": {
		"infoType": {
			"type": "object",
			"properties": {
				"infoType":   {"type": "string"},
				"infoFormat": {"type": "string"}
			},
			"additionalProperties": false
		}
	},
	"properties": {
		"name":          {"type": "string", "minLength": 1},
		"description":   {"type": "string"},
		"category":      {"type": "string"},
		"configExample": {"type": "string"},
		"publisher":     {"type": "string"},
		"diskRequired":  {"type": "integer", "minimum": 0},
		"ramRequired":   {"type": "integer", "minimum": 0},
		"picture":       {"type": "string"},
		"isPublic":      {"type": "boolean"},
		"registryId":    {"type": "integer", "minimum": 1},
		"images": {
			"type":     "array",
			"maxItems": 2,
			"items": {
				"type": "object",
				"properties": {
					"containerImage": {"type": "string"},
					"fogTypeId":      {"type": "integer", "enum": [1, 2]}
				},
				"required":             ["fogTypeId"],
				"additionalProperties": false
			}
		},
		"inputType":  {"$ref": "#/definitions/infoType"},
		"outputType": {"$ref": "#/definitions/infoType"}
	},
	"additionalProperties": false
}`

var specSchema = schemavalidator.MustCompile(catalogItemSchema)

// ParseCatalogItemSpec decodes a JSON or YAML payload, checks it against the
// catalog item schema and validates the result.
func ParseCatalogItemSpec(data []byte) (*CatalogItemSpec, apperrors.Error) {
	if len(data) == 0 {
		return nil, ErrInvalidCatalogItem.Msg("empty catalog item")
	}
	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, ErrInvalidCatalogItem.Err(err)
	}
	if ves := specSchema.Validate(j); ves != nil {
		return nil, ErrInvalidCatalogItem.Err(ves)
	}
	spec := &CatalogItemSpec{}
	if err := json.Unmarshal(j, spec); err != nil {
		return nil, ErrInvalidCatalogItem.Err(err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func (s *CatalogItemSpec) Validate() apperrors.Error {
	if ves := schemavalidator.Struct(s); ves != nil {
		return ErrInvalidCatalogItem.Err(ves)
	}
	return nil
}

// specFromItem is the inverse of applyTo, used as the base document of a merge patch.
func specFromItem(item *models.CatalogItem) *CatalogItemSpec {
	s := &CatalogItemSpec{
		Name:          lo.ToPtr(item.Name),
		Description:   lo.ToPtr(item.Description),
		Category:      lo.ToPtr(item.Category),
		ConfigExample: lo.ToPtr(item.ConfigExample),
		Publisher:     lo.ToPtr(item.Publisher),
		DiskRequired:  lo.ToPtr(item.DiskRequired),
		RAMRequired:   lo.ToPtr(item.RAMRequired),
		Picture:       lo.ToPtr(item.Picture),
		IsPublic:      lo.ToPtr(item.IsPublic),
		RegistryID:    item.RegistryID,
		InputType:     infoTypeSpec(item.InputType),
		OutputType:    infoTypeSpec(item.OutputType),
	}
	s.Images = lo.Map(item.Images, func(img models.CatalogItemImage, _ int) ImageSpec {
		return ImageSpec{ContainerImage: lo.ToPtr(img.ContainerImage), FogTypeID: img.FogTypeID}
	})
	return s
}

func infoTypeSpec(t *models.CatalogItemInfoType) *InfoTypeSpec {
	if t == nil {
		return nil
	}
	return &InfoTypeSpec{InfoType: lo.ToPtr(t.InfoType), InfoFormat: lo.ToPtr(t.InfoFormat)}
}

// applyTo copies the set fields of s onto item. Image entries without
// a container image are dropped.
func (s *CatalogItemSpec) applyTo(item *models.CatalogItem) {
	setIf(&item.Name, s.Name)
	setIf(&item.Description, s.Description)
	setIf(&item.Category, s.Category)
	setIf(&item.ConfigExample, s.ConfigExample)
	setIf(&item.Publisher, s.Publisher)
	setIf(&item.DiskRequired, s.DiskRequired)
	setIf(&item.RAMRequired, s.RAMRequired)
	setIf(&item.Picture, s.Picture)
	setIf(&item.IsPublic, s.IsPublic)
	if s.RegistryID != nil {
		item.RegistryID = s.RegistryID
	}
	if s.Images != nil {
		item.Images = lo.FilterMap(s.Images, func(img ImageSpec, _ int) (models.CatalogItemImage, bool) {
			if img.ContainerImage == nil || *img.ContainerImage == "" {
				return models.CatalogItemImage{}, false
			}
			return models.CatalogItemImage{ContainerImage: *img.ContainerImage, FogTypeID: img.FogTypeID}, true
		})
	}
	item.InputType = applyInfoType(item.InputType, s.InputType)
	item.OutputType = applyInfoType(item.OutputType, s.OutputType)
}

func applyInfoType(cur *models.CatalogItemInfoType, s *InfoTypeSpec) *models.CatalogItemInfoType {
	if s == nil {
		return cur
	}
	t := &models.CatalogItemInfoType{}
	setIf(&t.InfoType, s.InfoType)
	setIf(&t.InfoFormat, s.InfoFormat)
	return t
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
