package suite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Alcunha-R/demo-api-stone-host/internal/config"
	"github.com/Alcunha-R/demo-api-stone-host/internal/store"
	"github.com/Alcunha-R/demo-api-stone-host/internal/store/postgres"

	// Import PostgreSQL driver for database connection
	_ "github.com/lib/pq"
)

const (
	migrateUpMarker   = "-- +migrate Up"
	migrateDownMarker = "-- +migrate Down"
)

// DBSuite provides functionality for database tests.
// Every suite runs in its own schema, dropped on teardown.
type DBSuite struct {
	BaseSuite

	// DB connections
	DB         *sqlx.DB
	DBHandler  *postgres.DB
	testSchema string

	// Configuration
	Config *config.Config

	// Transactor for services using the test transaction
	Transactor *postgres.Transactor

	// Stores
	OrderStore  store.OrderStore
	ChargeStore store.ChargeStore
	EventStore  store.EventStore
}

// SetupSuite initializes the test environment with a database
func (s *DBSuite) SetupSuite() {
	SkipIfShortTest(s.T())

	s.BaseSuite.SetupSuite()

	s.loadConfig()
	s.ensureTestDatabaseExists()

	var err error
	s.DB, err = s.connect(s.Config.Database)
	if err != nil {
		s.T().Skipf("PostgreSQL is not available: %v", err)
	}

	// Create a unique schema for tests
	s.testSchema = fmt.Sprintf("test_%s", strings.ReplaceAll(uuid.New().String()[:8], "-", ""))
	s.Require().NoError(s.createTestSchema(s.testSchema))

	// All pooled connections of the stores use the test schema
	dbCfg := s.Config.Database
	dbCfg.SearchPath = s.testSchema
	s.DBHandler, err = postgres.NewDB(dbCfg)
	s.Require().NoError(err)

	s.applyMigrations()
	s.initRepositories()
}

// SetupTest prepares the test environment before each test
func (s *DBSuite) SetupTest() {
	s.cleanupTables()
}

// TearDownSuite releases resources after tests are completed
func (s *DBSuite) TearDownSuite() {
	if s.DBHandler != nil {
		_ = s.DBHandler.Close()
	}

	if s.DB != nil && s.testSchema != "" {
		s.T().Logf("Cleaning up test schema %s", s.testSchema)
		if _, err := s.DB.Exec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", s.testSchema)); err != nil {
			s.T().Logf("Failed to delete schema: %v", err)
		}
		_ = s.DB.Close()
	}

	s.BaseSuite.TearDownSuite()
}

// Schema returns the schema the suite runs in
func (s *DBSuite) Schema() string {
	return s.testSchema
}

// Context returns a context bounded for a single test step
func (s *DBSuite) Context() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	s.T().Cleanup(cancel)
	return ctx
}

// loadConfig loads configuration from config_test.yaml
func (s *DBSuite) loadConfig() {
	if os.Getenv("CONFIG_PATH") == "" {
		projectRoot, err := filepath.Abs("../../../")
		s.Require().NoError(err, "Failed to determine project root")

		configTestPath := filepath.Join(projectRoot, "config", "config_test.yaml")
		if _, err := os.Stat(configTestPath); os.IsNotExist(err) {
			s.T().Fatalf("Configuration file not found at path: %s", configTestPath)
		}

		s.T().Logf("Using configuration from: %s", configTestPath)
		s.T().Setenv("CONFIG_PATH", configTestPath)
	}

	cfg, err := config.LoadConfig()
	s.Require().NoError(err, "Configuration initialization error")

	s.Config = &cfg
	s.T().Logf("Configuration successfully loaded. Database settings: %s@%s:%s/%s",
		s.Config.Database.User, s.Config.Database.Host, s.Config.Database.Port, s.Config.Database.DBName)
}

// ensureTestDatabaseExists checks if the test database exists and creates it if necessary
func (s *DBSuite) ensureTestDatabaseExists() {
	adminCfg := s.Config.Database
	adminCfg.DBName = "postgres"

	db, err := sql.Open("postgres", adminCfg.DSN())
	if err != nil {
		s.T().Logf("Failed to connect to postgres: %v", err)
		return
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		s.T().Logf("Failed to establish connection to postgres: %v", err)
		return
	}

	dbName := s.Config.Database.DBName
	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists)
	if err != nil {
		s.T().Logf("Failed to check if database exists: %v", err)
		return
	}
	if exists {
		return
	}

	// Database names cannot be parameterized
	if !isValidDBName(dbName) {
		s.T().Fatalf("Invalid database name: %s", dbName)
	}

	s.T().Logf("Database %s doesn't exist, creating...", dbName)
	if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE %s", dbName)); err != nil {
		s.T().Logf("Failed to create database: %v", err)
	}
}

// isValidDBName checks that the database name contains only valid characters
func isValidDBName(name string) bool {
	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_') {
			return false
		}
	}
	return true
}

// connect connects to the test database with a few retries
func (s *DBSuite) connect(cfg config.Database) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)
	for attempts := 0; attempts < 3; attempts++ {
		db, err = sqlx.Connect("postgres", cfg.DSN())
		if err == nil {
			return db, nil
		}
		s.T().Logf("Failed to connect to database %s attempt %d: %v, retrying...", cfg.DBName, attempts+1, err)
		time.Sleep(time.Duration(attempts+1) * time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.DBName, err)
}

// createTestSchema creates a unique schema for tests
func (s *DBSuite) createTestSchema(schemaName string) error {
	s.T().Logf("Creating test schema %s", schemaName)

	if _, err := s.DB.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName)); err != nil {
		return fmt.Errorf("failed to create schema %s: %w", schemaName, err)
	}
	return nil
}

// applyMigrations runs the Up section of every migration file in name order
func (s *DBSuite) applyMigrations() {
	projectRoot, err := filepath.Abs("../../../")
	s.Require().NoError(err, "Failed to determine project root")

	migrationsDir := filepath.Join(projectRoot, "migrations")
	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	s.Require().NoError(err)
	if len(files) == 0 {
		s.T().Fatalf("No migrations found in %s", migrationsDir)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		s.Require().NoError(err)

		up := upSection(string(content))
		if _, err := s.DBHandler.Primary(context.Background()).ExecContext(context.Background(), up); err != nil {
			s.T().Fatalf("Error applying migration %s: %v", filepath.Base(file), err)
		}
		s.T().Logf("Migration %s applied to schema %s", filepath.Base(file), s.testSchema)
	}
}

// upSection returns the statements between the Up and Down markers of a sql-migrate file
func upSection(content string) string {
	if i := strings.Index(content, migrateUpMarker); i >= 0 {
		content = content[i+len(migrateUpMarker):]
	}
	if i := strings.Index(content, migrateDownMarker); i >= 0 {
		content = content[:i]
	}
	return content
}

// initRepositories initializes repositories with database connection
func (s *DBSuite) initRepositories() {
	st := postgres.NewStoreFromDB(s.DBHandler)

	s.OrderStore = st.OrderStore()
	s.ChargeStore = st.ChargeStore()
	s.EventStore = st.EventStore()
	s.Transactor = postgres.NewTransactor(s.DBHandler)
}

// cleanupTables cleans tables before each test
func (s *DBSuite) cleanupTables() {
	tables := []string{"cobrancas_stone", "pedidos_stone", "webhooks_stone"}
	for _, table := range tables {
		_, err := s.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s.%s", s.testSchema, table))
		if err != nil {
			s.T().Logf("Error cleaning table %s: %v", table, err)
		}
	}
}
