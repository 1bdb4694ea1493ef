package models

import (
	"time"

	"github.com/google/uuid"
)

/*
    Column    |           Type           | Nullable | Default
--------------+--------------------------+----------+---------
 id           | integer                  | not null | nextval('tracks_id_seq')
 name         | text                     | not null |
 description  | text                     | not null | ''
 is_activated | boolean                  | not null | false
 user_id      | integer                  |          |
 created_at   | timestamp with time zone | not null | now()
 updated_at   | timestamp with time zone | not null | now()
*/

type Track struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	IsActivated bool      `db:"is_activated" json:"isActivated"`
	UserID      *int64    `db:"user_id" json:"userId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

/*
       Column        |           Type           | Nullable | Default
---------------------+--------------------------+----------+---------
 uuid                | uuid                     | not null |
 name                | text                     | not null |
 config              | text                     | not null | '{}'
 config_last_updated | bigint                   | not null | 0
 catalog_item_id     | integer                  | not null |          -> catalog_items ON DELETE CASCADE
 track_id            | integer                  | not null |          -> tracks ON DELETE CASCADE
 fog_uuid            | uuid                     |          |          -> fogs ON DELETE SET NULL
 root_host_access    | boolean                  | not null | false
 log_size            | bigint                   | not null | 0
 rebuild             | boolean                  | not null | false
 user_id             | integer                  |          |
 created_at          | timestamp with time zone | not null | now()
 updated_at          | timestamp with time zone | not null | now()
*/

type ElementInstance struct {
	UUID              uuid.UUID  `db:"uuid" json:"uuid"`
	Name              string     `db:"name" json:"name"`
	Config            string     `db:"config" json:"config"`
	ConfigLastUpdated int64      `db:"config_last_updated" json:"configLastUpdated"`
	CatalogItemID     int64      `db:"catalog_item_id" json:"catalogItemId"`
	TrackID           int64      `db:"track_id" json:"trackId"`
	FogUUID           *uuid.UUID `db:"fog_uuid" json:"fogUuid"`
	RootHostAccess    bool       `db:"root_host_access" json:"rootHostAccess"`
	LogSize           int64      `db:"log_size" json:"logSize"`
	Rebuild           bool       `db:"rebuild" json:"rebuild"`
	UserID            *int64     `db:"user_id" json:"userId"`
	CreatedAt         time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updatedAt"`
}

/*
        Column         |  Type   | Nullable | Default
-----------------------+---------+----------+---------
 id                    | integer | not null | nextval('element_instance_ports_id_seq')
 element_instance_uuid | uuid    | not null |
 port_internal         | integer | not null |
 port_external         | integer | not null |
 is_public             | boolean | not null | false
*/

type ElementInstancePort struct {
	ID                  int64     `db:"id" json:"id"`
	ElementInstanceUUID uuid.UUID `db:"element_instance_uuid" json:"elementInstanceUuid"`
	PortInternal        int       `db:"port_internal" json:"internal"`
	PortExternal        int       `db:"port_external" json:"external"`
	IsPublic            bool      `db:"is_public" json:"isPublic"`
}

/*
      Column      |  Type   | Nullable
------------------+---------+----------
 id               | integer | not null
 publisher_uuid   | uuid    | not null   -> element_instances ON DELETE CASCADE
 destination_uuid | uuid    | not null   -> element_instances ON DELETE CASCADE
*/

type Routing struct {
	ID              int64     `db:"id" json:"id"`
	PublisherUUID   uuid.UUID `db:"publisher_uuid" json:"publisher"`
	DestinationUUID uuid.UUID `db:"destination_uuid" json:"destination"`
}
