package postgres

import (
	"context"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/Alcunha-R/demo-api-stone-host/internal/config"
	"github.com/Alcunha-R/demo-api-stone-host/internal/store"
)

// Store implements all data stores
type Store struct {
	db           *DB
	orderStore   store.OrderStore
	chargeStore  store.ChargeStore
	eventStore   store.EventStore
	dbTransactor store.DBTransactor
}

// NewStore creates a new instance of Store
func NewStore(cfg config.Database) (*Store, error) {
	db, err := NewDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	return newStore(db), nil
}

// NewStoreFromDB creates a Store over an existing connection pool
func NewStoreFromDB(db *DB) *Store {
	return newStore(db)
}

func newStore(db *DB) *Store {
	return &Store{
		db:           db,
		orderStore:   NewOrderStore(db),
		chargeStore:  NewChargeStore(db),
		eventStore:   NewEventStore(db),
		dbTransactor: NewTransactor(db),
	}
}

// OrderStore returns the OrderStore implementation
func (s *Store) OrderStore() store.OrderStore {
	return s.orderStore
}

// ChargeStore returns the ChargeStore implementation
func (s *Store) ChargeStore() store.ChargeStore {
	return s.chargeStore
}

// EventStore returns the EventStore implementation
func (s *Store) EventStore() store.EventStore {
	return s.eventStore
}

// DBTransactor returns the DBTransactor implementation
func (s *Store) DBTransactor() store.DBTransactor {
	return s.dbTransactor
}

// Ping checks that the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
