package postgres

//nolint:revive
import (
	"barber/config"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	host     string
	port     string
	username string
	password string
	dbName   string
	sslMode  string
	timezone string
}

// DSN renders the lib/pq URL for the endpoint.
func (e endpoint) DSN() string {
	query := url.Values{}
	if e.sslMode != "" {
		query.Set("sslmode", e.sslMode)
	}

	if e.timezone != "" {
		query.Set("timezone", e.timezone)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.username, e.password),
		Host:     net.JoinHostPort(e.host, e.port),
		Path:     "/" + e.dbName,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// New opens the read and write pools. Both may point at the same server.
func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	read := endpoint{
		name: "read", host: pg.Read.Host, port: pg.Read.Port, username: pg.Read.Username,
		password: pg.Read.Password, dbName: dbName(cfg, pg.Read.Name), sslMode: pg.Read.SSLMode,
		timezone: pg.Read.Timezone,
	}
	write := endpoint{
		name: "write", host: pg.Write.Host, port: pg.Write.Port, username: pg.Write.Username,
		password: pg.Write.Password, dbName: dbName(cfg, pg.Write.Name), sslMode: pg.Write.SSLMode,
		timezone: pg.Write.Timezone,
	}

	return &Connection{
		Read:  connect(read, pg.MaxRetry, pg.RetryWaitTime),
		Write: connect(write, pg.MaxRetry, pg.RetryWaitTime),
	}
}

func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

func dbName(cfg *config.Config, baseName string) string {
	return cfg.DB.Postgres.Prefix + baseName
}

func connect(target endpoint, maxRetry, waitSeconds int) *sqlx.DB {
	logger := log.With().
		Str("name", target.name).
		Str("host", target.host).
		Str("port", target.port).
		Str("dbName", target.dbName).
		Logger()

	var lastErr error

	for attempt := 1; attempt <= max(maxRetry, 1); attempt++ {
		db, err := sqlx.Connect("postgres", target.DSN())
		if err == nil {
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)
			db.SetConnMaxLifetime(postgresConnMaxLifetime)

			logger.Info().Msg("Connected to database")

			return db
		}

		lastErr = err
		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	logger.Fatal().Err(fmt.Errorf("giving up after %d attempts: %w", max(maxRetry, 1), lastErr)).Msg("Failed connecting to database")

	return nil
}
