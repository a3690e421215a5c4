package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Alcunha-R/demo-api-stone-host/internal/config"
)

type txCtxKey struct{}

// DB представляет пул соединений с базой данных PostgreSQL
type DB struct {
	db *sqlx.DB
}

// NewDB создает новый пул соединений с базой данных PostgreSQL
func NewDB(cfg config.Database) (*DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return &DB{db: db}, nil
}

// NewDBFromSqlx wraps an already opened connection pool
func NewDBFromSqlx(db *sqlx.DB) *DB {
	return &DB{db: db}
}

// Primary возвращает транзакцию из контекста, если она открыта, иначе пул (для записи)
func (d *DB) Primary(ctx context.Context) sqlx.ExtContext {
	if tx, ok := ctx.Value(txCtxKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return d.db
}

// Replica возвращает соединение для чтения
func (d *DB) Replica() *sqlx.DB {
	return d.db
}

// Ping проверяет доступность базы данных
func (d *DB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// Close закрывает пул соединений
func (d *DB) Close() error {
	return d.db.Close()
}

// Transactor реализует интерфейс store.DBTransactor для работы с транзакциями
type Transactor struct {
	db *DB
}

// NewTransactor создает новый экземпляр Transactor
func NewTransactor(db *DB) *Transactor {
	return &Transactor{db: db}
}

// Exec выполняет функцию в транзакции. Вложенный вызов переиспользует открытую транзакцию.
func (t *Transactor) Exec(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txCtxKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.db.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	txCtx := context.WithValue(ctx, txCtxKey{}, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed: %v, rollback failed: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
