// Package changetracker records when the state a fog agent polls for last
// changed, and answers the agent's "what changed since" query.
package changetracker

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/apperrors"
	"github.com/mugiliam/fogcontroller/internal/common"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var (
	ErrChangeTracking apperrors.Error = apperrors.New("unable to update change tracking")
	ErrNotTracked     apperrors.Error = ErrChangeTracking.New("fog has no change tracking")
)

// Changes is the agent facing view of a change tracking row. A flag is set
// when that category changed after the agent's last poll.
type Changes struct {
	Config          bool `json:"config"`
	ContainerConfig bool `json:"containerconfig"`
	ContainerList   bool `json:"containerlist"`
	Routing         bool `json:"routing"`
	Registries      bool `json:"registries"`
}

// Touch stamps categories of every fog in fogIDs with the current time.
// Nil and duplicate ids and duplicate categories are ignored.
func Touch(ctx context.Context, fogIDs []uuid.UUID, categories ...types.ChangeCategory) apperrors.Error {
	ids := lo.Uniq(lo.Filter(fogIDs, func(id uuid.UUID, _ int) bool { return id != uuid.Nil }))
	if len(ids) == 0 {
		return nil
	}
	if err := db.DB(ctx).TouchChangeTracking(ctx, ids, common.NowMillis(ctx), lo.Uniq(categories)...); err != nil {
		log.Ctx(ctx).Error().Err(err).Int("fogs", len(ids)).Msg("failed to touch change tracking")
		return ErrChangeTracking.Err(err)
	}
	return nil
}

// TouchFog is Touch for a single, possibly unassigned, fog.
func TouchFog(ctx context.Context, fogID *uuid.UUID, categories ...types.ChangeCategory) apperrors.Error {
	if fogID == nil {
		return nil
	}
	return Touch(ctx, []uuid.UUID{*fogID}, categories...)
}

// Since loads the tracking row of fogID and reports the categories changed
// strictly after since (unix millis).
func Since(ctx context.Context, fogID uuid.UUID, since int64) (*Changes, apperrors.Error) {
	ct, err := db.DB(ctx).GetChangeTracking(ctx, fogID)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrNotTracked
		}
		return nil, ErrChangeTracking.Err(err)
	}
	return Compare(ct, since), nil
}

func Compare(ct *models.ChangeTracking, since int64) *Changes {
	return &Changes{
		Config:          ct.Config > since,
		ContainerConfig: ct.ContainerConfig > since,
		ContainerList:   ct.ContainerList > since,
		Routing:         ct.Routing > since,
		Registries:      ct.Registries > since,
	}
}
