package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/richei-group/richei-backend/internal/config"
)

const connectTimeout = 10 * time.Second

// PostgresDB wraps the pgx connection pool shared by all repositories.
type PostgresDB struct {
	Pool *pgxpool.Pool
}

// NewPostgresDB opens a pool against cfg.DatabaseURL and verifies the
// connection before returning. Pool sizing comes from DB_MAX_CONNS and
// DB_MIN_CONNS.
func NewPostgresDB(cfg *config.Config) (*PostgresDB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.DBMaxConns)
	poolCfg.MinConns = int32(cfg.DBMinConns)
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	log.Printf("[DB] ✅ PostgreSQL pool ready (max %d conns)", cfg.DBMaxConns)
	return &PostgresDB{Pool: pool}, nil
}

func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
		log.Println("[DB] PostgreSQL pool closed")
	}
}
