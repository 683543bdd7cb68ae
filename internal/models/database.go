package models

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ContextKey string

const (
	DBContextURL ContextKey = "tally-backend-url"
)

// DatabaseConfig selects and configures the database driver.
type DatabaseConfig struct {
	Path     string // SQLite database file, used when Host is empty
	Host     string
	User     string
	Password string
	Name     string
}

// Dialector returns PostgreSQL when a host is configured and SQLite otherwise.
func (c DatabaseConfig) Dialector() gorm.Dialector {
	if c.Host != "" {
		log.Debug().Str("host", c.Host).Msg("Database host is set, using postgresql")
		return postgres.Open(c.PostgresDSN())
	}

	log.Debug().Str("path", c.Path).Msg("Database host is not set, using sqlite")
	return sqlite.Open(SQLiteDSN(c.Path))
}

// PostgresDSN returns the connection URL for PostgreSQL. Host may include a
// port.
func (c DatabaseConfig) PostgresDSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   c.Host,
		Path:   "/" + c.Name,
	}

	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else if c.User != "" {
		u.User = url.User(c.User)
	}

	return u.String()
}

// SQLiteDSN returns the DSN for a SQLite file with foreign keys enabled.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
}

// Connect opens the database, registers the error callbacks and migrates
// the schema.
func Connect(dialector gorm.Dialector) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// SQLite only allows one writer at a time. A single connection
	// prevents SQLITE_BUSY errors.
	if dialector.Name() == "sqlite" {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	err = Migrate(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate migrates all models to the schema defined in the code.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		Account{},
		Category{},
		RecurringSchedule{},
		Transaction{},
		BillReminder{},
		Budget{},
		BudgetAlert{},
		Settings{},
		Notification{},
		Goal{},
	)
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}

func registerCallbacks(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "tally:after_query", queryCallback},
		{db.Callback().Query().After("*"), "tally:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "tally:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "tally:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "tally:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "tally:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "tally:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return fmt.Errorf("could not register callback %s: %w", c.name, err)
		}
	}

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	// Account name must be unique per user
	if strings.Contains(msg, "UNIQUE constraint failed: accounts.") || strings.Contains(msg, "account_name_user") {
		db.Error = ErrAccountNameNotUnique
	}

	// Category names need to be unique per user
	if strings.Contains(msg, "UNIQUE constraint failed: categories.") || strings.Contains(msg, "category_name_user") {
		db.Error = ErrCategoryNameNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}
