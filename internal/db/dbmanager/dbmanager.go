// Package dbmanager owns the PostgreSQL connection pool.
package dbmanager

import (
	"context"
	"database/sql"
	"sync/atomic"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/mugiliam/fogcontroller/internal/config"
	"github.com/rs/zerolog/log"
)

// Pool hands out dedicated connections from a database/sql pool backed by pgx.
type Pool struct {
	db       *sql.DB
	requests atomic.Uint64
	returns  atomic.Uint64
}

// Conn is a connection borrowed from a Pool. Close returns it.
type Conn struct {
	*sql.Conn
	pool *Pool
}

// Open creates the pool and verifies that the database is reachable.
func Open(ctx context.Context, c config.DatabaseConfig) (*Pool, error) {
	db, err := sql.Open("pgx", c.DSN())
	if err != nil {
		return nil, err
	}
	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		log.Ctx(ctx).Error().Err(err).Str("host", c.Host).Str("name", c.Name).Msg("unable to reach database")
		return nil, err
	}
	return &Pool{db: db}, nil
}

// Conn returns a new connection to the database.
func (p *Pool) Conn(ctx context.Context) (*Conn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	p.requests.Add(1)
	return &Conn{Conn: conn, pool: p}, nil
}

// Stats returns the number of connection requests and returns.
func (p *Pool) Stats() (requests, returns uint64) {
	return p.requests.Load(), p.returns.Load()
}

// DB exposes the underlying handle for schema migrations.
func (p *Pool) DB() *sql.DB {
	return p.db
}

func (p *Pool) Close() error {
	return p.db.Close()
}

func (c *Conn) Close(ctx context.Context) {
	if err := c.Conn.Close(); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("unable to return db connection")
	}
	c.pool.returns.Add(1)
}
