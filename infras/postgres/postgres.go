package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"hotelier/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

var ErrConnectionExhausted = errors.New("could not connect to database")

// Connection owns the process-wide connection pool. It is created once at
// startup, handed to the repositories and closed at shutdown.
type Connection struct {
	DB *sqlx.DB
}

func New(config *config.Config) (*Connection, func(), error) {
	db, err := CreatePostgresConnection(config)
	if err != nil {
		return nil, nil, err
	}

	conn := &Connection{DB: db}

	return conn, conn.Close, nil
}

// NewFromDB wraps an already opened pool.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{DB: db}
}

// Close releases every pooled connection.
func (c *Connection) Close() {
	if c == nil || c.DB == nil {
		return
	}

	if err := c.DB.Close(); err != nil {
		log.Error().Err(err).Msg("Failed closing database connection")

		return
	}

	log.Info().Msg("Database connection closed")
}

// DSN builds the lib/pq connection URL from the configuration.
func DSN(config *config.Config) string {
	pg := config.DB.Postgres

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(pg.Username, pg.Password),
		Host:     net.JoinHostPort(pg.Host, pg.Port),
		Path:     pg.Name,
		RawQuery: url.Values{"sslmode": []string{pg.SSLMode}}.Encode(),
	}

	return dsn.String()
}

// CreatePostgresConnection connects to the database, retrying up to the
// configured number of attempts.
func CreatePostgresConnection(config *config.Config) (*sqlx.DB, error) {
	pg := config.DB.Postgres
	descriptor := DSN(config)

	attempts := max(pg.MaxRetry, 1)

	var err error

	for retry := range attempts {
		var sqlDB *sqlx.DB

		sqlDB, err = sqlx.Connect(driverName, descriptor)
		if err == nil {
			log.
				Info().
				Str("host", pg.Host).
				Str("port", pg.Port).
				Str("dbName", pg.Name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(pg.MaxIdleConns)
			sqlDB.SetMaxOpenConns(pg.MaxOpenConns)

			return sqlDB, nil
		}

		log.
			Error().
			Err(err).
			Str("host", pg.Host).
			Str("port", pg.Port).
			Str("dbName", pg.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		if retry+1 < attempts {
			time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrConnectionExhausted, attempts, err)
}
