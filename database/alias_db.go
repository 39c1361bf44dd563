package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"lawlinks/aliases"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

const (
	// DriverSQLite драйвер go-sqlite3
	DriverSQLite = "sqlite3"
	// DriverPostgres драйвер pgx через database/sql
	DriverPostgres = "pgx"
)

// ErrUnsupportedDSN DSN не относится ни к SQLite, ни к PostgreSQL
var ErrUnsupportedDSN = errors.New("unsupported alias store DSN")

// DBConfig конфигурация подключения к БД
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// AliasDB хранилище таблицы псевдонимов законов
type AliasDB struct {
	conn   *sql.DB
	driver string
}

// AliasStats сводка по содержимому хранилища
type AliasStats struct {
	Driver  string `json:"driver"`
	Laws    int    `json:"laws"`
	Aliases int    `json:"aliases"`
}

const aliasSchema = `
CREATE TABLE IF NOT EXISTS law_aliases (
	law_id TEXT NOT NULL,
	law_position INTEGER NOT NULL,
	alias TEXT NOT NULL,
	alias_position INTEGER NOT NULL,
	PRIMARY KEY (law_id, alias_position)
)`

const aliasIndex = `CREATE INDEX IF NOT EXISTS idx_law_aliases_order ON law_aliases(law_position, alias_position)`

// ParseDSN определяет драйвер и строку подключения.
//
// Поддерживаются sqlite://path, sqlite3://path, file:..., :memory:, пути к *.db
// и postgres:// (postgresql://).
func ParseDSN(dsn string) (driver, source string, err error) {
	dsn = strings.TrimSpace(dsn)
	lower := strings.ToLower(dsn)

	switch {
	case dsn == "":
		return "", "", fmt.Errorf("%w: empty", ErrUnsupportedDSN)
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres, dsn, nil
	case strings.HasPrefix(lower, "sqlite3://"):
		return DriverSQLite, dsn[len("sqlite3://"):], nil
	case strings.HasPrefix(lower, "sqlite://"):
		return DriverSQLite, dsn[len("sqlite://"):], nil
	case dsn == ":memory:", strings.HasPrefix(lower, "file:"):
		return DriverSQLite, dsn, nil
	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"):
		return DriverSQLite, dsn, nil
	}

	return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}

// isInMemory определяет, что путь относится к in-memory SQLite
func isInMemory(source string) bool {
	if source == ":memory:" {
		return true
	}
	return strings.HasPrefix(source, "file:") && strings.Contains(source, "mode=memory")
}

// NewAliasDB открывает хранилище псевдонимов по DSN
func NewAliasDB(dsn string) (*AliasDB, error) {
	driver, source, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}

	config := DBConfig{}
	// Каждое новое соединение к in-memory SQLite получает пустую БД
	if driver == DriverSQLite && isInMemory(source) {
		config.MaxOpenConns = 1
		config.MaxIdleConns = 1
	}

	return NewAliasDBWithConfig(driver, source, config)
}

// NewAliasDBWithConfig открывает хранилище с настройками пула соединений
func NewAliasDBWithConfig(driver, source string, config DBConfig) (*AliasDB, error) {
	conn, err := sql.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("failed to open alias database: %w", err)
	}

	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	} else if driver == DriverSQLite {
		conn.SetMaxOpenConns(10)
	}

	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	} else {
		conn.SetMaxIdleConns(3)
	}

	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	} else {
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping alias database: %w", err)
	}

	if driver == DriverSQLite && !isInMemory(source) {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			log.Printf("[AliasDB] Warning: Failed to enable WAL mode: %v", err)
		}
	}

	db := &AliasDB{conn: conn, driver: driver}
	if err := db.initSchema(context.Background()); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize alias schema: %w", err)
	}

	return db, nil
}

func (db *AliasDB) initSchema(ctx context.Context) error {
	for _, stmt := range []string{aliasSchema, aliasIndex} {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Driver возвращает имя драйвера
func (db *AliasDB) Driver() string {
	return db.driver
}

// Close закрывает подключение
func (db *AliasDB) Close() error {
	return db.conn.Close()
}

// Ping проверяет подключение к базе данных
func (db *AliasDB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// LoadTable читает таблицу псевдонимов в порядке регистрации
func (db *AliasDB) LoadTable(ctx context.Context) (*aliases.Table, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT law_id, alias FROM law_aliases ORDER BY law_position, alias_position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query law aliases: %w", err)
	}
	defer rows.Close()

	table := aliases.NewTable("db:" + db.driver)
	for rows.Next() {
		var lawID, alias string
		if err := rows.Scan(&lawID, &alias); err != nil {
			return nil, fmt.Errorf("failed to scan law alias: %w", err)
		}
		table.Append(lawID, alias)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read law aliases: %w", err)
	}

	return table, nil
}

// ReplaceTable атомарно заменяет содержимое хранилища
func (db *AliasDB) ReplaceTable(ctx context.Context, table *aliases.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM law_aliases`); err != nil {
		return fmt.Errorf("failed to clear law aliases: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, db.rebind(
		`INSERT INTO law_aliases (law_id, law_position, alias, alias_position) VALUES (?, ?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for lawPos, law := range table.Laws {
		for aliasPos, alias := range law.Aliases {
			if _, err := stmt.ExecContext(ctx, law.ID, lawPos, alias, aliasPos); err != nil {
				return fmt.Errorf("failed to insert alias %q of law %s: %w", alias, law.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Stats возвращает количество законов и псевдонимов
func (db *AliasDB) Stats(ctx context.Context) (AliasStats, error) {
	stats := AliasStats{Driver: db.driver}
	err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT law_id), COUNT(*) FROM law_aliases`).Scan(&stats.Laws, &stats.Aliases)
	if err != nil {
		return stats, fmt.Errorf("failed to count law aliases: %w", err)
	}
	return stats, nil
}

// rebind заменяет плейсхолдеры ? на $n для PostgreSQL
func (db *AliasDB) rebind(query string) string {
	if db.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
