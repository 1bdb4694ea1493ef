// Description: This file contains the context package which is used to set and retrieve data from the context.
package common

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/mugiliam/fogcontroller/internal/config"
	"github.com/mugiliam/fogcontroller/internal/db/models"
)

// ctxUserKeyType represents the key type for the authenticated user in the context.
type ctxUserKeyType string

const ctxUserKey ctxUserKeyType = "FogControllerUser"

// ctxFogKeyType represents the key type for the authenticated fog node in the context.
type ctxFogKeyType string

const ctxFogKey ctxFogKeyType = "FogControllerFog"

// SetUserInContext sets the authenticated user in the provided context.
func SetUserInContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, ctxUserKey, user)
}

// UserFromContext retrieves the authenticated user, or nil if there is none.
func UserFromContext(ctx context.Context) *models.User {
	if user, ok := ctx.Value(ctxUserKey).(*models.User); ok {
		return user
	}
	return nil
}

// SetFogInContext sets the fog node authenticated by its access token.
func SetFogInContext(ctx context.Context, fog *models.Fog) context.Context {
	return context.WithValue(ctx, ctxFogKey, fog)
}

// FogFromContext retrieves the authenticated fog node, or nil if there is none.
func FogFromContext(ctx context.Context) *models.Fog {
	if fog, ok := ctx.Value(ctxFogKey).(*models.Fog); ok {
		return fog
	}
	return nil
}

type ctxClockKeyType string

const ctxClockKey ctxClockKeyType = "FogControllerClock"

var wallClock = clock.New()

// SetClockInContext overrides the clock used for timestamps and expiry checks.
func SetClockInContext(ctx context.Context, c clock.Clock) context.Context {
	return context.WithValue(ctx, ctxClockKey, c)
}

// ClockFromContext returns the clock stored in ctx, or the wall clock.
func ClockFromContext(ctx context.Context) clock.Clock {
	if c, ok := ctx.Value(ctxClockKey).(clock.Clock); ok {
		return c
	}
	return wallClock
}

// NowMillis returns the current time of the context clock in unix milliseconds.
func NowMillis(ctx context.Context) int64 {
	return ClockFromContext(ctx).Now().UnixMilli()
}

type ctxConfigKeyType string

const ctxConfigKey ctxConfigKeyType = "FogControllerConfig"

// SetConfigInContext makes the resolved server configuration available to handlers.
func SetConfigInContext(ctx context.Context, c *config.Config) context.Context {
	return context.WithValue(ctx, ctxConfigKey, c)
}

// ConfigFromContext returns the configuration stored in ctx, or the defaults.
func ConfigFromContext(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(ctxConfigKey).(*config.Config); ok {
		return c
	}
	d := config.Default()
	return &d
}
