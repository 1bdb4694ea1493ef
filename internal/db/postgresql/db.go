package postgresql

import (
	"context"
	"database/sql"

	"github.com/mugiliam/fogcontroller/internal/db/dbmanager"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/rs/zerolog/log"
)

type FogDb struct {
	c *dbmanager.Conn
}

func NewFogDb(conn *dbmanager.Conn) *FogDb {
	return &FogDb{c: conn}
}

func (h *FogDb) conn() *sql.Conn {
	return h.c.Conn
}

// withTx runs fn in a transaction, committing only if fn succeeds.
func (h *FogDb) withTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := h.conn().BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to start transaction")
		return dberror.ErrDatabase.Err(err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Ctx(ctx).Error().Err(rollbackErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to commit transaction")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// checkAffected turns a zero-row update or delete into ErrNotFound.
func checkAffected(ctx context.Context, result sql.Result, what string) error {
	n, err := result.RowsAffected()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to get rows affected")
		return dberror.ErrDatabase.Err(err)
	}
	if n == 0 {
		log.Ctx(ctx).Info().Msg(what + " not found")
		return dberror.ErrNotFound.Msg(what + " not found")
	}
	return nil
}

func (h *FogDb) Close(ctx context.Context) {
	h.c.Close(ctx)
}
