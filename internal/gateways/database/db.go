package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sunar87/foodgram/foodgram"
	"github.com/sunar87/foodgram/foodgram/config"
	"github.com/sunar87/foodgram/foodgram/logger"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
)

type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg foodgram.DBConfig) (*DB, error) {
	// Retry the initial dial so the API can start alongside the database container
	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))
	var err error
	for i := 0; i < defaultMaxRetries; i++ {
		var conn net.Conn
		conn, err = net.DialTimeout("tcp", addr, config.NetworkDialTimeout)
		if err == nil {
			conn.Close()
			break
		}
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", defaultMaxRetries, err)
	}

	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxLifetime) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &DB{pool: pool, bunDB: newBunDB(cfg)}, nil
}

func buildConnString(cfg foodgram.DBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?connect_timeout=5",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
}

func newBunDB(cfg foodgram.DBConfig) *bun.DB {
	sslMode := os.Getenv("PG_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, sslMode,
	)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if cfg.PoolSize > 0 {
		sqldb.SetMaxOpenConns(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	return bun.NewDB(sqldb, pgdialect.New())
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func (db *DB) ExecWithLog(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	result, err := db.pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.LogQuery(sql, time.Since(start), err,
			slog.String("operation", "exec"),
			slog.Any("args", args))
		return result, err
	}

	logger.LogQuery(sql, time.Since(start), nil,
		slog.String("operation", "exec"),
		slog.Int64("affected_rows", result.RowsAffected()))
	return result, nil
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}

// Ping verifies both database connections are working
func (db *DB) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pgxpool ping failed: %w", err)
	}
	if err := db.bunDB.PingContext(ctx); err != nil {
		return fmt.Errorf("bun ping failed: %w", err)
	}
	return nil
}

// InitializeSchema creates all tables and indexes, plus the Postgres-only
// indexes used by ingredient prefix search.
func (db *DB) InitializeSchema(ctx context.Context) error {
	if err := CreateSchema(ctx, db.bunDB); err != nil {
		return err
	}

	pgIndexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_ingredients_name_lower ON ingredients (lower(name) text_pattern_ops);",
	}
	for _, idx := range pgIndexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

type tableSpec struct {
	model       any
	foreignKeys []string
	checks      []string
}

// Tables are listed parents first so foreign keys resolve on creation.
var tables = []tableSpec{
	{model: (*models.User)(nil)},
	{model: (*models.Tag)(nil)},
	{model: (*models.Ingredient)(nil)},
	{
		model: (*models.Subscription)(nil),
		foreignKeys: []string{
			`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
			`("author_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
		},
	},
	{
		model: (*models.Recipe)(nil),
		foreignKeys: []string{
			`("author_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
		},
		checks: []string{
			fmt.Sprintf("CONSTRAINT chk_recipes_cooking_time CHECK (cooking_time BETWEEN %d AND %d)",
				config.MinCookingTime, config.MaxCookingTime),
		},
	},
	{
		model: (*models.RecipeTag)(nil),
		foreignKeys: []string{
			`("recipe_id") REFERENCES "recipes" ("id") ON DELETE CASCADE`,
			`("tag_id") REFERENCES "tags" ("id") ON DELETE CASCADE`,
		},
	},
	{
		model: (*models.RecipeIngredient)(nil),
		foreignKeys: []string{
			`("recipe_id") REFERENCES "recipes" ("id") ON DELETE CASCADE`,
			`("ingredient_id") REFERENCES "ingredients" ("id") ON DELETE CASCADE`,
		},
		checks: []string{
			fmt.Sprintf("CONSTRAINT chk_recipe_ingredients_amount CHECK (amount BETWEEN %d AND %d)",
				config.MinAmount, config.MaxAmount),
		},
	},
	{
		model: (*models.Favorite)(nil),
		foreignKeys: []string{
			`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
			`("recipe_id") REFERENCES "recipes" ("id") ON DELETE CASCADE`,
		},
	},
	{
		model: (*models.CartEntry)(nil),
		foreignKeys: []string{
			`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
			`("recipe_id") REFERENCES "recipes" ("id") ON DELETE CASCADE`,
		},
	},
	{model: (*models.ShortLink)(nil)},
}

var indexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_recipes_author_id ON recipes(author_id);",
	"CREATE INDEX IF NOT EXISTS idx_recipe_tags_tag_id ON recipe_tags(tag_id);",
	"CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_ingredient_id ON recipe_ingredients(ingredient_id);",
	"CREATE INDEX IF NOT EXISTS idx_favorites_recipe_id ON favorites(recipe_id);",
	"CREATE INDEX IF NOT EXISTS idx_cart_entries_recipe_id ON cart_entries(recipe_id);",
	"CREATE INDEX IF NOT EXISTS idx_subscriptions_author_id ON subscriptions(author_id);",
	"CREATE INDEX IF NOT EXISTS idx_ingredients_name ON ingredients(name);",
}

// CreateSchema creates the tables and portable indexes on any bun database.
// It is idempotent.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	for _, table := range tables {
		query := db.NewCreateTable().
			Model(table.model).
			IfNotExists()
		for _, check := range table.checks {
			query = query.ColumnExpr(check)
		}
		for _, fk := range table.foreignKeys {
			query = query.ForeignKey(fk)
		}
		if _, err := query.Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, idx := range indexes {
		if _, err := db.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
