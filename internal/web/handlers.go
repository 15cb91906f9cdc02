package web

import (
	"io/fs"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/flashcards/internal/core"
	"github.com/JonMunkholm/flashcards/internal/deck"
	"github.com/JonMunkholm/flashcards/internal/flashcard"
	"github.com/JonMunkholm/flashcards/internal/logging"
)

// FilesResponse is the body of GET /api/files.
type FilesResponse struct {
	Files []string `json:"files"`
}

// DeckResponse is the body of GET /api/load/{filename}.
type DeckResponse struct {
	Filename string           `json:"filename"`
	Cards    []flashcard.Card `json:"cards"`
}

// HistoryResponse is the body of GET /api/history.
type HistoryResponse struct {
	Uploads []core.UploadRecord `json:"uploads"`
}

// handleIndex serves the study page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := fs.ReadFile(staticFiles, "static/index.html")
	if err != nil {
		respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// handleHealth reports liveness and upload slot usage.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"uploads": s.service.UploadLimiterStatus(),
	})
}

// handleListFiles returns the available deck names.
func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	files, err := s.service.ListDecks(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, FilesResponse{Files: files})
}

// handleLoadDeck parses a deck and returns its cards. With ?shuffle=true the
// cards come back in random order; ?seed=N makes the order repeatable.
func (s *Server) handleLoadDeck(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	cards, err := s.service.LoadDeck(r.Context(), filename)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if shuffle, _ := strconv.ParseBool(r.URL.Query().Get("shuffle")); shuffle {
		d := deck.New(cards)
		d.Shuffle(rand.New(rand.NewSource(parseSeed(r))))
		cards = d.Cards()
	}

	logging.WithDeck(r.Context(), filename).Debug("deck loaded", "cards", len(cards))
	writeJSON(w, http.StatusOK, DeckResponse{Filename: filename, Cards: cards})
}

// handleExportDeck returns the deck re-serialized as normalized CSV.
func (s *Server) handleExportDeck(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	text, err := s.service.ExportDeck(r.Context(), filename)
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(filename))
	w.Write([]byte(text))
}

// handleHistory returns recent uploads, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", core.DefaultHistoryLimit)

	uploads, err := s.service.History(r.Context(), limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, HistoryResponse{Uploads: uploads})
}

// parseIntParam parses a positive integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

func parseSeed(r *http.Request) int64 {
	if seed, err := strconv.ParseInt(r.URL.Query().Get("seed"), 10, 64); err == nil {
		return seed
	}
	return time.Now().UnixNano()
}
