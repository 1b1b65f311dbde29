package review

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DishSelection is a dish tag resolved against the menu.
type DishSelection struct {
	Name     string
	Category string
}

// PrivateFeedback is the customer's note for the team. ServerID is nil when
// the named server is unknown.
type PrivateFeedback struct {
	Text     string
	ServerID *int
}

// Record is every row written for one request.
type Record struct {
	Qualitative []Tag
	Dishes      []DishSelection
	Feedback    *PrivateFeedback
	// GeneratedFor is the server credited with a public review, if any.
	GeneratedFor string
}

func (r Record) Empty() bool {
	return len(r.Qualitative) == 0 && len(r.Dishes) == 0 && r.Feedback == nil && r.GeneratedFor == ""
}

// Recorder persists a Record atomically: all rows or none.
type Recorder interface {
	Save(ctx context.Context, rec Record) error
}

// --------------------------------------------------
// POSTGRES
// --------------------------------------------------
type PostgresRecorder struct {
	db *pgxpool.Pool
}

func NewPostgresRecorder(db *pgxpool.Pool) *PostgresRecorder {
	return &PostgresRecorder{db: db}
}

func (r *PostgresRecorder) Save(ctx context.Context, rec Record) error {
	if rec.Empty() {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, t := range rec.Qualitative {
		batch.Queue(`INSERT INTO qualitative_feedback (category, value) VALUES ($1, $2)`, t.Category, t.Value)
	}
	for _, d := range rec.Dishes {
		batch.Queue(`INSERT INTO menu_selections (dish_name, dish_category) VALUES ($1, $2)`, d.Name, d.Category)
	}
	if rec.Feedback != nil {
		batch.Queue(`INSERT INTO internal_feedback (feedback_text, associated_server_id) VALUES ($1, $2)`,
			rec.Feedback.Text, rec.Feedback.ServerID)
	}
	if rec.GeneratedFor != "" {
		batch.Queue(`INSERT INTO generated_reviews (server_name) VALUES ($1)`, rec.GeneratedFor)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// IN MEMORY
// --------------------------------------------------

// MemoryRecorder keeps saved records. When Err is set Save fails and keeps
// nothing.
type MemoryRecorder struct {
	mu      sync.Mutex
	Records []Record
	Err     error
}

func (m *MemoryRecorder) Save(ctx context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if !rec.Empty() {
		m.Records = append(m.Records, rec)
	}
	return nil
}

func (m *MemoryRecorder) Saved() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Record(nil), m.Records...)
}
