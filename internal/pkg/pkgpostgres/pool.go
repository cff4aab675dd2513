package pkgpostgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotInitialized is returned by a nil or zero Pool.
var ErrNotInitialized = errors.New("pool is not initialized")

// Config holds pool configuration parameters.
type Config struct {
	URL            string
	MaxConns       int32
	AcquireTimeout time.Duration
}

// Conn is a connection borrowed from the pool. Release must be called once
// the caller is done with it.
type Conn interface {
	// ServerVersion returns the version the server reported at startup.
	ServerVersion() string
	Release()
}

// Pool is a PostgreSQL connection pool.
type Pool struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
	secrets        []string
}

// New creates the pool. No connection is opened until the first Acquire.
func New(ctx context.Context, cfg Config) (*Pool, error) {
	if cfg.MaxConns <= 0 {
		cfg.MaxConns = 10
	}
	if cfg.AcquireTimeout <= 0 {
		cfg.AcquireTimeout = 5 * time.Second
	}

	secrets := []string{cfg.URL}

	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, &Error{Op: "parse connection string", Err: err, secrets: secrets}
	}
	poolConfig.MaxConns = cfg.MaxConns
	if poolConfig.ConnConfig.ConnectTimeout <= 0 || poolConfig.ConnConfig.ConnectTimeout > cfg.AcquireTimeout {
		poolConfig.ConnConfig.ConnectTimeout = cfg.AcquireTimeout
	}
	secrets = append(secrets, poolConfig.ConnConfig.Password)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, &Error{Op: "create pool", Err: err, secrets: secrets}
	}

	return &Pool{pool: pool, acquireTimeout: cfg.AcquireTimeout, secrets: secrets}, nil
}

// Acquire borrows a connection, waiting at most the configured acquire timeout.
func (p *Pool) Acquire(ctx context.Context) (Conn, error) {
	if p == nil || p.pool == nil {
		return nil, &Error{Op: "acquire connection", Err: ErrNotInitialized}
	}

	ctx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	c, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, &Error{Op: "acquire connection", Err: err, secrets: p.secrets}
	}

	return &conn{c: c}, nil
}

// Ping checks connectivity within the acquire timeout.
func (p *Pool) Ping(ctx context.Context) error {
	if p == nil || p.pool == nil {
		return &Error{Op: "ping", Err: ErrNotInitialized}
	}

	ctx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	if err := p.pool.Ping(ctx); err != nil {
		return &Error{Op: "ping", Err: err, secrets: p.secrets}
	}
	return nil
}

// Close closes the pool.
func (p *Pool) Close(context.Context) error {
	if p != nil && p.pool != nil {
		p.pool.Close()
	}
	return nil
}

// String describes the pool target without credentials.
func (p *Pool) String() string {
	if p == nil || p.pool == nil {
		return "postgres <uninitialized>"
	}
	cfg := p.pool.Config().ConnConfig
	return fmt.Sprintf("postgres %s:%d/%s", cfg.Host, cfg.Port, cfg.Database)
}

type conn struct {
	c *pgxpool.Conn
}

func (c *conn) ServerVersion() string {
	return c.c.Conn().PgConn().ParameterStatus("server_version")
}

func (c *conn) Release() {
	c.c.Release()
}
