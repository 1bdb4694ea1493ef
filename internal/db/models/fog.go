package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

/*
          Column           |           Type           | Nullable | Default
---------------------------+--------------------------+----------+------------------------------
 uuid                      | uuid                     | not null |
 name                      | text                     | not null | 'Unnamed ioFog 1'
 location                  | text                     | not null | ''
 latitude                  | double precision         | not null | 0
 longitude                 | double precision         | not null | 0
 description               | text                     | not null | ''
 fog_type_id               | integer                  | not null | 0
 daemon_status             | text                     | not null | 'UNKNOWN'
 daemon_operating_duration | bigint                   | not null | 0
 daemon_last_start         | bigint                   | not null | 0
 memory_usage              | double precision         | not null | 0
 disk_usage                | double precision         | not null | 0
 cpu_usage                 | double precision         | not null | 0
 memory_violation          | text                     | not null | ''
 disk_violation            | text                     | not null | ''
 cpu_violation             | text                     | not null | ''
 repository_count          | integer                  | not null | 0
 repository_status         | text                     | not null | ''
 system_time               | bigint                   | not null | 0
 last_status_time          | bigint                   | not null | 0
 ip_address                | text                     | not null | '0.0.0.0'
 processed_messages        | bigint                   | not null | 0
 message_speed             | double precision         | not null | 0
 last_command_time         | bigint                   | not null | 0
 version                   | text                     | not null | ''
 status_info               | jsonb                    |          |
 network_interface         | text                     | not null | 'eth0'
 docker_url                | text                     | not null | 'unix:///var/run/docker.sock'
 disk_limit                | double precision         | not null | 50
 disk_directory            | text                     | not null | '/var/lib/iofog/'
 memory_limit              | double precision         | not null | 4096
 cpu_limit                 | double precision         | not null | 80
 log_limit                 | double precision         | not null | 10
 log_directory             | text                     | not null | '/var/log/iofog/'
 log_file_count            | integer                  | not null | 10
 status_frequency          | integer                  | not null | 10
 change_frequency          | integer                  | not null | 20
 device_scan_frequency     | integer                  | not null | 60
 last_active               | bigint                   | not null | 0
 access_token              | text                     | not null | ''
 user_id                   | integer                  |          |
 created_at                | timestamp with time zone | not null | now()
 updated_at                | timestamp with time zone | not null | now()
*/

type Fog struct {
	UUID        uuid.UUID `db:"uuid" json:"uuid"`
	Name        string    `db:"name" json:"name"`
	Location    string    `db:"location" json:"location"`
	Latitude    float64   `db:"latitude" json:"latitude"`
	Longitude   float64   `db:"longitude" json:"longitude"`
	Description string    `db:"description" json:"description"`
	FogTypeID   int       `db:"fog_type_id" json:"fogTypeId"`

	FogStatus
	FogAgentConfig

	LastActive  int64     `db:"last_active" json:"lastActive"`
	AccessToken string    `db:"access_token" json:"-"`
	UserID      *int64    `db:"user_id" json:"userId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// FogStatus is reported by the agent.
type FogStatus struct {
	DaemonStatus            string       `db:"daemon_status" json:"daemonStatus"`
	DaemonOperatingDuration int64        `db:"daemon_operating_duration" json:"daemonOperatingDuration"`
	DaemonLastStart         int64        `db:"daemon_last_start" json:"daemonLastStart"`
	MemoryUsage             float64      `db:"memory_usage" json:"memoryUsage"`
	DiskUsage               float64      `db:"disk_usage" json:"diskUsage"`
	CPUUsage                float64      `db:"cpu_usage" json:"cpuUsage"`
	MemoryViolation         string       `db:"memory_violation" json:"memoryViolation"`
	DiskViolation           string       `db:"disk_violation" json:"diskViolation"`
	CPUViolation            string       `db:"cpu_violation" json:"cpuViolation"`
	RepositoryCount         int          `db:"repository_count" json:"repositoryCount"`
	RepositoryStatus        string       `db:"repository_status" json:"repositoryStatus"`
	SystemTime              int64        `db:"system_time" json:"systemTime"`
	LastStatusTime          int64        `db:"last_status_time" json:"lastStatusTime"`
	IPAddress               string       `db:"ip_address" json:"ipAddress"`
	ProcessedMessages       int64        `db:"processed_messages" json:"processedMessages"`
	MessageSpeed            float64      `db:"message_speed" json:"messageSpeed"`
	LastCommandTime         int64        `db:"last_command_time" json:"lastCommandTime"`
	Version                 string       `db:"version" json:"version"`
	StatusInfo              pgtype.JSONB `db:"status_info" json:"-"`
}

// FogAgentConfig is the configuration handed to the agent.
type FogAgentConfig struct {
	NetworkInterface    string  `db:"network_interface" json:"networkInterface"`
	DockerURL           string  `db:"docker_url" json:"dockerUrl"`
	DiskLimit           float64 `db:"disk_limit" json:"diskLimit"`
	DiskDirectory       string  `db:"disk_directory" json:"diskDirectory"`
	MemoryLimit         float64 `db:"memory_limit" json:"memoryLimit"`
	CPULimit            float64 `db:"cpu_limit" json:"cpuLimit"`
	LogLimit            float64 `db:"log_limit" json:"logLimit"`
	LogDirectory        string  `db:"log_directory" json:"logDirectory"`
	LogFileCount        int     `db:"log_file_count" json:"logFileCount"`
	StatusFrequency     int     `db:"status_frequency" json:"statusFrequency"`
	ChangeFrequency     int     `db:"change_frequency" json:"changeFrequency"`
	DeviceScanFrequency int     `db:"device_scan_frequency" json:"deviceScanFrequency"`
}

/*
   Column    |  Type   | Nullable
-------------+---------+----------
 id          | integer | not null
 name        | text    | not null
 image       | text    | not null
 description | text    | not null
*/

type FogType struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Image       string `db:"image" json:"image"`
	Description string `db:"description" json:"description"`
}

/*
      Column      |  Type  | Nullable
------------------+--------+----------
 provisioning_key | text   | not null
 expiration_time  | bigint | not null   unix millis
 fog_uuid         | uuid   | not null   -> fogs ON DELETE CASCADE
*/

type ProvisionKey struct {
	Key            string    `db:"provisioning_key" json:"provisionKey"`
	ExpirationTime int64     `db:"expiration_time" json:"expirationTime"`
	FogUUID        uuid.UUID `db:"fog_uuid" json:"fogUuid"`
}

/*
      Column      |  Type  | Nullable | Default
------------------+--------+----------+---------
 fog_uuid         | uuid   | not null |
 config           | bigint | not null | 0
 container_config | bigint | not null | 0
 container_list   | bigint | not null | 0
 routing          | bigint | not null | 0
 registries       | bigint | not null | 0
*/

// ChangeTracking holds, per fog, the unix millis of the last change in each category.
type ChangeTracking struct {
	FogUUID         uuid.UUID `db:"fog_uuid" json:"-"`
	Config          int64     `db:"config" json:"config"`
	ContainerConfig int64     `db:"container_config" json:"containerConfig"`
	ContainerList   int64     `db:"container_list" json:"containerList"`
	Routing         int64     `db:"routing" json:"routing"`
	Registries      int64     `db:"registries" json:"registries"`
}
