package fogmanager

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/mugiliam/fogcontroller/internal/apperrors"
	"github.com/mugiliam/fogcontroller/internal/changetracker"
	"github.com/mugiliam/fogcontroller/internal/common"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/schemavalidator"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

// StatusSpec is a status report posted by the fog agent. Keys follow the
// agent's all lowercase naming.
type StatusSpec struct {
	DaemonStatus            *string         `json:"daemonstatus,omitempty"`
	DaemonOperatingDuration *int64          `json:"daemonoperatingduration,omitempty"`
	DaemonLastStart         *int64          `json:"daemonlaststart,omitempty"`
	MemoryUsage             *float64        `json:"memoryusage,omitempty"`
	DiskUsage               *float64        `json:"diskusage,omitempty"`
	CPUUsage                *float64        `json:"cpuusage,omitempty"`
	MemoryViolation         *string         `json:"memoryviolation,omitempty"`
	DiskViolation           *string         `json:"diskviolation,omitempty"`
	CPUViolation            *string         `json:"cpuviolation,omitempty"`
	RepositoryCount         *int            `json:"repositorycount,omitempty"`
	RepositoryStatus        *string         `json:"repositorystatus,omitempty"`
	SystemTime              *int64          `json:"systemtime,omitempty"`
	LastStatusTime          *int64          `json:"laststatustime,omitempty"`
	IPAddress               *string         `json:"ipaddress,omitempty"`
	ProcessedMessages       *int64          `json:"processedmessages,omitempty"`
	MessageSpeed            *float64        `json:"messagespeed,omitempty"`
	LastCommandTime         *int64          `json:"lastcommandtime,omitempty"`
	Version                 *string         `json:"version,omitempty"`
	ElementStatus           json.RawMessage `json:"elementstatus,omitempty"`
	ElementMessageCounts    json.RawMessage `json:"elementmessagecounts,omitempty"`
}

type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindFloat
	kindJSON
)

var statusFields = map[string]fieldKind{
	"daemonstatus":            kindString,
	"daemonoperatingduration": kindInt,
	"daemonlaststart":         kindInt,
	"memoryusage":             kindFloat,
	"diskusage":               kindFloat,
	"cpuusage":                kindFloat,
	"memoryviolation":         kindString,
	"diskviolation":           kindString,
	"cpuviolation":            kindString,
	"repositorycount":         kindInt,
	"repositorystatus":        kindString,
	"systemtime":              kindInt,
	"laststatustime":          kindInt,
	"ipaddress":               kindString,
	"processedmessages":       kindInt,
	"messagespeed":            kindFloat,
	"lastcommandtime":         kindInt,
	"version":                 kindString,
	"elementstatus":           kindJSON,
	"elementmessagecounts":    kindJSON,
}

var agentConfigFields = map[string]fieldKind{
	"networkinterface":    kindString,
	"dockerurl":           kindString,
	"disklimit":           kindFloat,
	"diskdirectory":       kindString,
	"memorylimit":         kindFloat,
	"cpulimit":            kindFloat,
	"loglimit":            kindFloat,
	"logdirectory":        kindString,
	"logfilecount":        kindInt,
	"statusfrequency":     kindInt,
	"changefrequency":     kindInt,
	"devicescanfrequency": kindInt,
}

// StatusSpecFromForm decodes a form encoded status report.
func StatusSpecFromForm(form url.Values) (*StatusSpec, apperrors.Error) {
	s := &StatusSpec{}
	if err := decodeForm(form, statusFields, s); err != nil {
		return nil, ErrInvalidFog.Err(err)
	}
	return s, nil
}

// AgentConfigSpecFromForm decodes a form encoded agent configuration.
// Keys match case insensitively, as they do for JSON bodies.
func AgentConfigSpecFromForm(form url.Values) (*AgentConfigSpec, apperrors.Error) {
	s := &AgentConfigSpec{}
	if err := decodeForm(form, agentConfigFields, s); err != nil {
		return nil, ErrInvalidFog.Err(err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeForm(form url.Values, fields map[string]fieldKind, dst any) error {
	m := make(map[string]any, len(form))
	for key, kind := range fields {
		v := form.Get(key)
		if v == "" {
			continue
		}
		var err error
		switch kind {
		case kindString:
			m[key] = v
		case kindInt:
			m[key], err = schemavalidator.ParseInt64(v)
		case kindFloat:
			m[key], err = cast.ToFloat64E(v)
		case kindJSON:
			if !gjson.Valid(v) {
				err = fmt.Errorf("%s is not valid JSON", key)
			}
			m[key] = json.RawMessage(v)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

// UpdateStatus records a status report and marks the fog active.
func UpdateStatus(ctx context.Context, fog *models.Fog, spec *StatusSpec) apperrors.Error {
	s := fog.FogStatus
	spec.applyTo(&s)
	if err := db.DB(ctx).UpdateFogStatus(ctx, fog.UUID, s, common.NowMillis(ctx)); err != nil {
		return saveError(ctx, err)
	}
	fog.FogStatus = s
	return nil
}

func (spec *StatusSpec) applyTo(s *models.FogStatus) {
	setIf(&s.DaemonStatus, spec.DaemonStatus)
	setIf(&s.DaemonOperatingDuration, spec.DaemonOperatingDuration)
	setIf(&s.DaemonLastStart, spec.DaemonLastStart)
	setIf(&s.MemoryUsage, spec.MemoryUsage)
	setIf(&s.DiskUsage, spec.DiskUsage)
	setIf(&s.CPUUsage, spec.CPUUsage)
	setIf(&s.MemoryViolation, spec.MemoryViolation)
	setIf(&s.DiskViolation, spec.DiskViolation)
	setIf(&s.CPUViolation, spec.CPUViolation)
	setIf(&s.RepositoryCount, spec.RepositoryCount)
	setIf(&s.RepositoryStatus, spec.RepositoryStatus)
	setIf(&s.SystemTime, spec.SystemTime)
	setIf(&s.LastStatusTime, spec.LastStatusTime)
	setIf(&s.IPAddress, spec.IPAddress)
	setIf(&s.ProcessedMessages, spec.ProcessedMessages)
	setIf(&s.MessageSpeed, spec.MessageSpeed)
	setIf(&s.LastCommandTime, spec.LastCommandTime)
	setIf(&s.Version, spec.Version)
	if spec.ElementStatus != nil || spec.ElementMessageCounts != nil {
		info := map[string]json.RawMessage{}
		if spec.ElementStatus != nil {
			info["elementStatus"] = spec.ElementStatus
		}
		if spec.ElementMessageCounts != nil {
			info["elementMessageCounts"] = spec.ElementMessageCounts
		}
		b, _ := json.Marshal(info)
		s.StatusInfo = pgtype.JSONB{Bytes: b, Status: pgtype.Present}
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// AgentConfig is the configuration view polled by the agent.
type AgentConfig struct {
	NetworkInterface    string  `json:"networkinterface"`
	DockerURL           string  `json:"dockerurl"`
	DiskLimit           float64 `json:"disklimit"`
	DiskDirectory       string  `json:"diskdirectory"`
	MemoryLimit         float64 `json:"memorylimit"`
	CPULimit            float64 `json:"cpulimit"`
	LogLimit            float64 `json:"loglimit"`
	LogDirectory        string  `json:"logdirectory"`
	LogFileCount        int     `json:"logfilecount"`
	StatusFrequency     int     `json:"statusfrequency"`
	ChangeFrequency     int     `json:"changefrequency"`
	DeviceScanFrequency int     `json:"devicescanfrequency"`
}

func GetAgentConfig(fog *models.Fog) *AgentConfig {
	c := AgentConfig(fog.FogAgentConfig)
	return &c
}

// UpdateAgentConfig stores configuration changed locally on the fog. The
// agent is the source of the change, so no change is flagged back to it.
func UpdateAgentConfig(ctx context.Context, fog *models.Fog, spec *AgentConfigSpec) apperrors.Error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if err := mergeInto(&fog.FogAgentConfig, spec); err != nil {
		return ErrInvalidFog.Err(err)
	}
	if err := db.DB(ctx).UpdateFog(ctx, fog); err != nil {
		return saveError(ctx, err)
	}
	return nil
}

// Changes reports which agent views changed after since (unix millis).
func Changes(ctx context.Context, fog *models.Fog, since int64) (*changetracker.Changes, apperrors.Error) {
	c, err := changetracker.Since(ctx, fog.UUID, since)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("uuid", fog.UUID.String()).Msg("failed to compute changes")
		return nil, err
	}
	return c, nil
}

type PortMapping struct {
	Internal int `json:"innerPort"`
	External int `json:"outerPort"`
}

// Container is one entry of the agent's container list.
type Container struct {
	ID              uuid.UUID     `json:"id"`
	ImageID         string        `json:"imageId"`
	RegistryURL     string        `json:"registryUrl"`
	LastModified    int64         `json:"lastModified"`
	RebuildRequired bool          `json:"rebuild"`
	RootHostAccess  bool          `json:"roothostaccess"`
	LogSize         int64         `json:"logSize"`
	PortMappings    []PortMapping `json:"portmappings"`
}

// ContainerList returns the containers the fog should run. The image of each
// element is the catalog image built for the fog's type; elements without
// one are skipped.
func ContainerList(ctx context.Context, fog *models.Fog) ([]Container, apperrors.Error) {
	elements, err := db.DB(ctx).ListElementInstancesByFog(ctx, fog.UUID)
	if err != nil {
		return nil, ErrUnableToLoad.Err(err)
	}
	items := map[int64]*models.CatalogItem{}
	registries := map[int64]string{}
	containers := []Container{}
	for _, e := range elements {
		item, ok := items[e.CatalogItemID]
		if !ok {
			if item, err = db.DB(ctx).GetCatalogItem(ctx, e.CatalogItemID); err != nil {
				return nil, ErrUnableToLoad.Err(err)
			}
			items[e.CatalogItemID] = item
		}
		img, found := lo.Find(item.Images, func(i models.CatalogItemImage) bool { return i.FogTypeID == fog.FogTypeID })
		if !found || img.ContainerImage == "" {
			log.Ctx(ctx).Warn().Str("element", e.UUID.String()).Int("fog_type", fog.FogTypeID).
				Msg("no image for fog type")
			continue
		}
		regURL, aerr := registryURL(ctx, item.RegistryID, registries)
		if aerr != nil {
			return nil, aerr
		}
		ports, err := db.DB(ctx).ListPorts(ctx, e.UUID)
		if err != nil {
			return nil, ErrUnableToLoad.Err(err)
		}
		containers = append(containers, Container{
			ID:              e.UUID,
			ImageID:         img.ContainerImage,
			RegistryURL:     regURL,
			LastModified:    e.UpdatedAt.UnixMilli(),
			RebuildRequired: e.Rebuild,
			RootHostAccess:  e.RootHostAccess,
			LogSize:         e.LogSize,
			PortMappings: lo.Map(ports, func(p models.ElementInstancePort, _ int) PortMapping {
				return PortMapping{Internal: p.PortInternal, External: p.PortExternal}
			}),
		})
	}
	return containers, nil
}

func registryURL(ctx context.Context, id *int64, cache map[int64]string) (string, apperrors.Error) {
	if id == nil {
		return "", nil
	}
	if u, ok := cache[*id]; ok {
		return u, nil
	}
	r, err := db.DB(ctx).GetRegistry(ctx, *id)
	if err != nil {
		return "", ErrUnableToLoad.Err(err)
	}
	cache[*id] = r.URL
	return r.URL, nil
}

type ContainerConfig struct {
	ID                   uuid.UUID `json:"id"`
	LastUpdatedTimestamp int64     `json:"lastupdatedtimestamp"`
	Config               string    `json:"config"`
}

func ContainerConfigs(ctx context.Context, fog *models.Fog) ([]ContainerConfig, apperrors.Error) {
	elements, err := db.DB(ctx).ListElementInstancesByFog(ctx, fog.UUID)
	if err != nil {
		return nil, ErrUnableToLoad.Err(err)
	}
	return lo.Map(elements, func(e models.ElementInstance, _ int) ContainerConfig {
		return ContainerConfig{ID: e.UUID, LastUpdatedTimestamp: e.ConfigLastUpdated, Config: e.Config}
	}), nil
}

// Registries lists the registries visible to the fog's owner.
func Registries(ctx context.Context, fog *models.Fog) ([]models.Registry, apperrors.Error) {
	rs, err := db.DB(ctx).ListRegistries(ctx, fog.UserID)
	if err != nil {
		return nil, ErrUnableToLoad.Err(err)
	}
	if rs == nil {
		rs = []models.Registry{}
	}
	return rs, nil
}

type Route struct {
	Container uuid.UUID   `json:"container"`
	Receivers []uuid.UUID `json:"receivers"`
}

// Routing groups the routes published from containers on the fog by
// publisher, in the order the publishers first appear.
func Routing(ctx context.Context, fog *models.Fog) ([]Route, apperrors.Error) {
	routings, err := db.DB(ctx).ListRoutingsByFog(ctx, fog.UUID)
	if err != nil {
		return nil, ErrUnableToLoad.Err(err)
	}
	byPublisher := lo.GroupBy(routings, func(r models.Routing) uuid.UUID { return r.PublisherUUID })
	publishers := lo.Uniq(lo.Map(routings, func(r models.Routing, _ int) uuid.UUID { return r.PublisherUUID }))
	return lo.Map(publishers, func(p uuid.UUID, _ int) Route {
		return Route{
			Container: p,
			Receivers: lo.Map(byPublisher[p], func(r models.Routing, _ int) uuid.UUID { return r.DestinationUUID }),
		}
	}), nil
}

// Pipe is a port of an element instance exposed publicly through comsat.
type Pipe struct {
	ElementID uuid.UUID `json:"elementId"`
	Name      string    `json:"name"`
	Internal  int       `json:"internal"`
	External  int       `json:"external"`
	URL       string    `json:"url"`
}

// ViewerAccess lists the public pipes of the elements running on fog id.
func ViewerAccess(ctx context.Context, user *models.User, id uuid.UUID, comsatHost string) ([]Pipe, apperrors.Error) {
	fog, aerr := GetFog(ctx, user, id)
	if aerr != nil {
		return nil, aerr
	}
	elements, err := db.DB(ctx).ListElementInstancesByFog(ctx, fog.UUID)
	if err != nil {
		return nil, ErrUnableToLoad.Err(err)
	}
	pipes := []Pipe{}
	for _, e := range elements {
		ports, err := db.DB(ctx).ListPorts(ctx, e.UUID)
		if err != nil {
			return nil, ErrUnableToLoad.Err(err)
		}
		for _, p := range ports {
			if !p.IsPublic {
				continue
			}
			pipes = append(pipes, Pipe{
				ElementID: e.UUID,
				Name:      e.Name,
				Internal:  p.PortInternal,
				External:  p.PortExternal,
				URL:       fmt.Sprintf("https://%s:%d", comsatHost, p.PortExternal),
			})
		}
	}
	return pipes, nil
}
