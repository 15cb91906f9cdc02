package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/JonMunkholm/flashcards/internal/config"
	"github.com/JonMunkholm/flashcards/internal/flashcard"
	"github.com/JonMunkholm/flashcards/internal/logging"
)

// UploadSuccessMessage is returned to clients after an accepted upload.
const UploadSuccessMessage = "File uploaded successfully"

// DefaultHistoryLimit is used by History when limit is not positive.
const DefaultHistoryLimit = 50

// Service provides deck listing, loading, uploading and export over a
// directory of .csv files.
type Service struct {
	decks       *DeckStore
	history     HistoryStore
	limiter     *UploadLimiter
	maxFileSize int64
	validate    *validator.Validate
	now         func() time.Time
}

// UploadResult describes an accepted upload.
type UploadResult struct {
	ID        uuid.UUID
	Filename  string
	CardCount int
	// Replaced is true when a deck with the same name was overwritten.
	Replaced bool
}

// uploadRequest is checked with struct tags before any bytes are read.
type uploadRequest struct {
	Filename string `validate:"required,max=255"`
	Ext      string `validate:"eq=.csv"`
}

// NewService creates a Service from configuration. A nil history keeps
// uploads in memory.
func NewService(cfg *config.Config, history HistoryStore) *Service {
	if history == nil {
		history = NewMemoryHistory(cfg.Storage.HistoryLimit)
	}
	return &Service{
		decks:       NewDeckStore(cfg.Storage.DataDir),
		history:     history,
		limiter:     NewUploadLimiter(cfg.Upload.MaxConcurrent, cfg.Upload.MaxWaitTime),
		maxFileSize: cfg.Upload.MaxFileSize,
		validate:    validator.New(),
		now:         time.Now,
	}
}

// Decks returns the underlying deck store.
func (s *Service) Decks() *DeckStore {
	return s.decks
}

// ListDecks returns the sorted names of available decks.
func (s *Service) ListDecks(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.decks.List()
}

// LoadDeck reads and parses a deck file.
func (s *Service) LoadDeck(ctx context.Context, filename string) ([]flashcard.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.decks.Open(filename)
	if err != nil {
		return nil, err
	}
	text, _, err := readAllFrom(f, s.maxFileSize)
	if err != nil {
		return nil, fmt.Errorf("load deck %q: %w", filename, err)
	}

	cards, err := flashcard.Parse(text)
	if err != nil {
		logging.WithDeck(ctx, filename).Debug("deck rejected by parser",
			"kind", flashcard.KindOf(err).String(),
			"error", describeParseError(err),
		)
		return nil, err
	}
	return cards, nil
}

// SaveUpload validates, parses and stores an uploaded deck. Nothing is
// written unless the whole file parses.
func (s *Service) SaveUpload(ctx context.Context, filename string, r io.Reader) (UploadResult, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		return UploadResult{}, err
	}
	defer s.limiter.Release()

	if err := s.checkUploadName(filename); err != nil {
		return UploadResult{}, err
	}

	text, size, err := ReadDeckText(r, s.maxFileSize)
	if err != nil {
		return UploadResult{}, err
	}

	cards, err := flashcard.Parse(text)
	if err != nil {
		logging.WithDeck(ctx, filename).Info("upload rejected by parser",
			"kind", flashcard.KindOf(err).String(),
			"error", describeParseError(err),
		)
		return UploadResult{}, err
	}

	if err := ctx.Err(); err != nil {
		return UploadResult{}, err
	}

	replaced := s.decks.Exists(filename)
	if err := s.decks.Write(filename, []byte(text)); err != nil {
		return UploadResult{}, err
	}

	rec := UploadRecord{
		ID:         uuid.New(),
		Filename:   filename,
		CardCount:  len(cards),
		SizeBytes:  size,
		ClientIP:   ClientIPFromContext(ctx),
		UploadedAt: s.now().UTC(),
	}
	// The deck is already stored; a history failure is logged, not returned.
	if err := s.history.RecordUpload(ctx, rec); err != nil {
		logging.WithDeck(ctx, filename).Warn("failed to record upload", "error", err)
	}

	logging.WithDeck(ctx, filename).Info("deck uploaded",
		"upload_id", rec.ID,
		"cards", rec.CardCount,
		"bytes", rec.SizeBytes,
		"replaced", replaced,
	)

	return UploadResult{
		ID:        rec.ID,
		Filename:  filename,
		CardCount: len(cards),
		Replaced:  replaced,
	}, nil
}

// ExportDeck loads a deck and re-serializes it as normalized CSV.
func (s *Service) ExportDeck(ctx context.Context, filename string) (string, error) {
	cards, err := s.LoadDeck(ctx, filename)
	if err != nil {
		return "", err
	}
	return flashcard.Serialize(cards), nil
}

// History returns recent uploads, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]UploadRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	records, err := s.history.RecentUploads(ctx, limit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []UploadRecord{}
	}
	return records, nil
}

// UploadLimiterStatus reports upload slot usage.
func (s *Service) UploadLimiterStatus() UploadLimiterStatus {
	return s.limiter.Status()
}

// WaitForUploads blocks until in-flight uploads finish or ctx is done.
func (s *Service) WaitForUploads(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}

func (s *Service) checkUploadName(filename string) error {
	if filename == "" {
		return ErrNoFile
	}
	req := uploadRequest{
		Filename: filename,
		Ext:      strings.ToLower(filepath.Ext(filename)),
	}
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "Ext" {
					return fmt.Errorf("%w: %q", ErrUnsupportedExtension, filename)
				}
			}
		}
		return fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	return ValidateFilename(filename)
}

// describeParseError adds the failing line to the fixed parser message for logs.
func describeParseError(err error) string {
	var pe *flashcard.ParseError
	if errors.As(err, &pe) && pe.Line > 0 {
		return fmt.Sprintf("line %d: %s", pe.Line, pe.Error())
	}
	return err.Error()
}
