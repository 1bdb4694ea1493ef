package models

import "time"

/*
     Column     |           Type           | Nullable | Default
----------------+--------------------------+----------+---------
 id             | integer                  | not null | nextval('catalog_items_id_seq')
 name           | text                     | not null |
 description    | text                     | not null | ''
 category       | text                     | not null | ''
 config_example | text                     | not null | '{}'
 publisher      | text                     | not null | ''
 disk_required  | bigint                   | not null | 0
 ram_required   | bigint                   | not null | 0
 picture        | text                     | not null | 'images/shared/default.png'
 is_public      | boolean                  | not null | false
 registry_id    | integer                  |          |          -> registries ON DELETE SET NULL
 user_id        | integer                  |          |          -> users ON DELETE CASCADE
 created_at     | timestamp with time zone | not null | now()
 updated_at     | timestamp with time zone | not null | now()
*/

type CatalogItem struct {
	ID            int64                `db:"id" json:"id"`
	Name          string               `db:"name" json:"name"`
	Description   string               `db:"description" json:"description"`
	Category      string               `db:"category" json:"category"`
	ConfigExample string               `db:"config_example" json:"configExample"`
	Publisher     string               `db:"publisher" json:"publisher"`
	DiskRequired  int64                `db:"disk_required" json:"diskRequired"`
	RAMRequired   int64                `db:"ram_required" json:"ramRequired"`
	Picture       string               `db:"picture" json:"picture"`
	IsPublic      bool                 `db:"is_public" json:"isPublic"`
	RegistryID    *int64               `db:"registry_id" json:"registryId"`
	UserID        *int64               `db:"user_id" json:"userId"`
	CreatedAt     time.Time            `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time            `db:"updated_at" json:"updatedAt"`
	Images        []CatalogItemImage   `json:"images"`
	InputType     *CatalogItemInfoType `json:"inputType,omitempty"`
	OutputType    *CatalogItemInfoType `json:"outputType,omitempty"`
}

/*
     Column      |  Type   | Nullable
-----------------+---------+----------
 id              | integer | not null
 catalog_item_id | integer | not null
 fog_type_id     | integer | not null
 container_image | text    | not null
*/

type CatalogItemImage struct {
	ContainerImage string `db:"container_image" json:"containerImage"`
	FogTypeID      int    `db:"fog_type_id" json:"fogTypeId"`
}

/*
     Column      |  Type   | Nullable
-----------------+---------+----------
 catalog_item_id | integer | not null
 direction       | text    | not null   'input' | 'output'
 info_type       | text    | not null
 info_format     | text    | not null
*/

type CatalogItemInfoType struct {
	InfoType   string `db:"info_type" json:"infoType"`
	InfoFormat string `db:"info_format" json:"infoFormat"`
}

const (
	InfoTypeInput  = "input"
	InfoTypeOutput = "output"
)
