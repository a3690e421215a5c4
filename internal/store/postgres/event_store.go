package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Alcunha-R/demo-api-stone-host/internal/entity"
	"github.com/Alcunha-R/demo-api-stone-host/internal/store"
)

// EventStore implements the store.EventStore interface for PostgreSQL
type EventStore struct {
	db *DB
}

// NewEventStore creates a new instance of EventStore
func NewEventStore(db *DB) *EventStore {
	return &EventStore{
		db: db,
	}
}

type rawEventRow struct {
	ID         string     `db:"id"`
	Type       string     `db:"tipo"`
	Payload    []byte     `db:"payload"`
	CreatedAt  *time.Time `db:"criado_em"`
	ReceivedAt time.Time  `db:"recebido_em"`
}

func (r *rawEventRow) toEntity() *entity.RawEvent {
	return &entity.RawEvent{
		ID:         r.ID,
		Type:       r.Type,
		Payload:    r.Payload,
		CreatedAt:  r.CreatedAt,
		ReceivedAt: r.ReceivedAt,
	}
}

// Create stores the event; a repeated id is ignored and reported with false
func (s *EventStore) Create(ctx context.Context, event *entity.RawEvent) (bool, error) {
	if event == nil || event.ID == "" {
		return false, fmt.Errorf("%w: event without id", entity.ErrInvalidEntity)
	}

	const query = `
		INSERT INTO webhooks_stone (id, tipo, payload, criado_em, recebido_em)
		VALUES ($1, $2, $3::jsonb, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`

	res, err := s.db.Primary(ctx).ExecContext(
		ctx,
		query,
		event.ID,
		event.Type,
		string(event.Payload),
		event.CreatedAt,
		event.ReceivedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create event: %w", store.HandlePGError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", store.HandlePGError(err))
	}

	return affected > 0, nil
}

// GetByID gets an event by its upstream identifier
func (s *EventStore) GetByID(ctx context.Context, id string) (*entity.RawEvent, error) {
	const query = `
		SELECT id, tipo, payload, criado_em, recebido_em
		FROM webhooks_stone
		WHERE id = $1
		LIMIT 1
	`

	var row rawEventRow
	err := sqlx.GetContext(ctx, s.db.Replica(), &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event by ID: %w", store.HandlePGError(err))
	}

	return row.toEntity(), nil
}

// ListReceivedSince lists events received at or after since, oldest first
func (s *EventStore) ListReceivedSince(ctx context.Context, since time.Time, limit int) ([]*entity.RawEvent, error) {
	const query = `
		SELECT id, tipo, payload, criado_em, recebido_em
		FROM webhooks_stone
		WHERE recebido_em >= $1
		ORDER BY recebido_em ASC, id ASC
		LIMIT $2
	`

	var rows []rawEventRow
	err := sqlx.SelectContext(ctx, s.db.Replica(), &rows, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", store.HandlePGError(err))
	}

	events := make([]*entity.RawEvent, 0, len(rows))
	for i := range rows {
		events = append(events, rows[i].toEntity())
	}

	return events, nil
}
