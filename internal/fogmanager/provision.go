package fogmanager

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/apperrors"
	"github.com/mugiliam/fogcontroller/internal/changetracker"
	"github.com/mugiliam/fogcontroller/internal/common"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/segmentio/ksuid"
)

const (
	provisionKeyLength   = 8
	provisionKeyAttempts = 3
)

// Provisioned is returned to an agent that redeemed a provisioning key.
type Provisioned struct {
	ID    uuid.UUID `json:"id"`
	Token string    `json:"token"`
}

// IssueProvisionKey creates a short lived key an agent can redeem to bind
// itself to fog id. Any earlier key of the fog stops working.
func IssueProvisionKey(ctx context.Context, user *models.User, id uuid.UUID, ttl time.Duration) (*models.ProvisionKey, apperrors.Error) {
	fog, aerr := GetFog(ctx, user, id)
	if aerr != nil {
		return nil, aerr
	}
	var err error
	for i := 0; i < provisionKeyAttempts; i++ {
		key := &models.ProvisionKey{
			Key:            lo.RandomString(provisionKeyLength, lo.AlphanumericCharset),
			ExpirationTime: common.ClockFromContext(ctx).Now().Add(ttl).UnixMilli(),
			FogUUID:        fog.UUID,
		}
		err = db.DB(ctx).CreateProvisionKey(ctx, key)
		if err == nil {
			return key, nil
		}
		if !errors.Is(err, dberror.ErrAlreadyExists) {
			break
		}
	}
	log.Ctx(ctx).Error().Err(err).Str("uuid", id.String()).Msg("failed to issue provision key")
	return nil, ErrUnableToSave.Err(err)
}

// DeleteProvisionKeys revokes the outstanding keys of fog id.
func DeleteProvisionKeys(ctx context.Context, user *models.User, id uuid.UUID) apperrors.Error {
	if _, err := GetFog(ctx, user, id); err != nil {
		return err
	}
	if err := db.DB(ctx).DeleteProvisionKeysForFog(ctx, id); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("uuid", id.String()).Msg("failed to delete provision keys")
		return ErrUnableToSave.Err(err)
	}
	return nil
}

// Provision redeems key for an agent running on fogType hardware. The fog
// receives a new access token and the key is consumed.
func Provision(ctx context.Context, key string, fogType types.FogTypeId) (*Provisioned, apperrors.Error) {
	if !fogType.Provisionable() {
		return nil, ErrInvalidFogType
	}
	pk, err := db.DB(ctx).GetProvisionKey(ctx, key)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrInvalidProvisionKey
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to load provision key")
		return nil, ErrUnableToLoad.Err(err)
	}
	now := common.NowMillis(ctx)
	if pk.ExpirationTime < now {
		log.Ctx(ctx).Info().Str("uuid", pk.FogUUID.String()).Msg("provision key expired")
		return nil, ErrProvisionKeyExpired
	}

	token := ksuid.New().String()
	if err := db.DB(ctx).ProvisionFog(ctx, pk.FogUUID, int(fogType), token, now); err != nil {
		return nil, saveError(ctx, err)
	}
	if err := db.DB(ctx).DeleteProvisionKey(ctx, key); err != nil && !errors.Is(err, dberror.ErrNotFound) {
		log.Ctx(ctx).Error().Err(err).Str("uuid", pk.FogUUID.String()).Msg("failed to consume provision key")
		return nil, ErrUnableToSave.Err(err)
	}
	if aerr := changetracker.Touch(ctx, []uuid.UUID{pk.FogUUID},
		types.ChangeConfig, types.ChangeContainerConfig, types.ChangeContainerList,
		types.ChangeRouting, types.ChangeRegistries); aerr != nil {
		return nil, aerr
	}
	return &Provisioned{ID: pk.FogUUID, Token: token}, nil
}

// Authenticate resolves the fog an agent request is made for. id and token
// come straight from the request path.
func Authenticate(ctx context.Context, id, token string) (*models.Fog, apperrors.Error) {
	fogID, err := uuid.Parse(id)
	if err != nil || token == "" {
		return nil, ErrUnauthorized
	}
	fog, err := db.DB(ctx).GetFog(ctx, fogID)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, loadError(ctx, err)
	}
	if fog.AccessToken == "" || subtle.ConstantTimeCompare([]byte(fog.AccessToken), []byte(token)) != 1 {
		log.Ctx(ctx).Info().Str("uuid", id).Msg("fog token mismatch")
		return nil, ErrUnauthorized
	}
	return fog, nil
}
