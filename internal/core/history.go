package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UploadRecord is one accepted deck upload.
type UploadRecord struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	CardCount  int       `json:"cardCount"`
	SizeBytes  int64     `json:"sizeBytes"`
	ClientIP   string    `json:"clientIp,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// HistoryStore records accepted uploads.
type HistoryStore interface {
	RecordUpload(ctx context.Context, rec UploadRecord) error
	// RecentUploads returns up to limit records, newest first.
	RecentUploads(ctx context.Context, limit int) ([]UploadRecord, error)
	// PruneBefore deletes records uploaded before cutoff.
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// MemoryHistory keeps the most recent uploads in memory. Used when no
// database is configured.
type MemoryHistory struct {
	mu      sync.Mutex
	records []UploadRecord
	max     int
}

// NewMemoryHistory creates a history that retains at most max records.
func NewMemoryHistory(max int) *MemoryHistory {
	if max <= 0 {
		max = 100
	}
	return &MemoryHistory{max: max}
}

// RecordUpload implements HistoryStore.
func (h *MemoryHistory) RecordUpload(_ context.Context, rec UploadRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, rec)
	if over := len(h.records) - h.max; over > 0 {
		h.records = append(h.records[:0:0], h.records[over:]...)
	}
	return nil
}

// RecentUploads implements HistoryStore.
func (h *MemoryHistory) RecentUploads(_ context.Context, limit int) ([]UploadRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if limit <= 0 || limit > len(h.records) {
		limit = len(h.records)
	}
	out := make([]UploadRecord, 0, limit)
	for i := len(h.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, h.records[i])
	}
	return out, nil
}

// PruneBefore implements HistoryStore.
func (h *MemoryHistory) PruneBefore(_ context.Context, cutoff time.Time) (int64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	kept := h.records[:0]
	for _, rec := range h.records {
		if !rec.UploadedAt.Before(cutoff) {
			kept = append(kept, rec)
		}
	}
	pruned := int64(len(h.records) - len(kept))
	h.records = kept
	return pruned, nil
}

// PostgresHistory stores uploads in the deck_uploads table.
type PostgresHistory struct {
	pool *pgxpool.Pool
}

// NewPostgresHistory wraps a connection pool. Run Migrate first.
func NewPostgresHistory(pool *pgxpool.Pool) *PostgresHistory {
	return &PostgresHistory{pool: pool}
}

// RecordUpload implements HistoryStore.
func (h *PostgresHistory) RecordUpload(ctx context.Context, rec UploadRecord) error {
	_, err := h.pool.Exec(ctx, `
		INSERT INTO deck_uploads (id, filename, card_count, size_bytes, client_ip, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.Filename, rec.CardCount, rec.SizeBytes, rec.ClientIP, rec.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("record upload %q: %w", rec.Filename, err)
	}
	return nil
}

// RecentUploads implements HistoryStore.
func (h *PostgresHistory) RecentUploads(ctx context.Context, limit int) ([]UploadRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := h.pool.Query(ctx, `
		SELECT id, filename, card_count, size_bytes, client_ip, uploaded_at
		FROM deck_uploads
		ORDER BY uploaded_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query upload history: %w", err)
	}
	defer rows.Close()

	var out []UploadRecord
	for rows.Next() {
		var rec UploadRecord
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.CardCount, &rec.SizeBytes, &rec.ClientIP, &rec.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan upload history: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read upload history: %w", err)
	}
	return out, nil
}

// PruneBefore implements HistoryStore.
func (h *PostgresHistory) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := h.pool.Exec(ctx, `DELETE FROM deck_uploads WHERE uploaded_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune upload history: %w", err)
	}
	return tag.RowsAffected(), nil
}
