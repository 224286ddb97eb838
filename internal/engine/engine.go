// Package engine orchestrates the tag pipeline: extraction, persistent
// ingestion, graph queries, and merges. It owns input validation so the
// server and CLI layers can stay thin.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pierkiroule/tagweave/internal/logger"
	"github.com/pierkiroule/tagweave/internal/store"
	"github.com/pierkiroule/tagweave/internal/tagger"
)

// ErrInvalidInput marks requests rejected before any store access.
// Callers map it to a 400 where store.ErrTagNotFound maps to a 404.
var ErrInvalidInput = errors.New("invalid input")

const (
	defaultLimit      = 10
	defaultWindowDays = 7
)

// Engine wires the pure tagger to the persistent store.
type Engine struct {
	db  *store.DB
	log *zap.Logger
}

func New(db *store.DB) *Engine {
	return &Engine{db: db, log: logger.Get()}
}

// Extract scores tags for a document without persisting anything.
// A non-positive topN falls back to the service default.
func (e *Engine) Extract(text, title string, topN int) ([]tagger.ScoredTag, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalidInput)
	}
	if topN <= 0 {
		topN = tagger.DefaultTopN
	}
	return tagger.Extract(text, title, topN), nil
}

// Ingest extracts tags from a document and records them in the graph:
// tag rows, document links, stats, and pairwise co-occurrence edges,
// all in one store transaction.
func (e *Engine) Ingest(documentID, text, title string) ([]store.Tag, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, fmt.Errorf("%w: empty document id", ErrInvalidInput)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalidInput)
	}

	scored := tagger.Extract(text, title, tagger.IngestTopN)
	names := make([]string, len(scored))
	for i, s := range scored {
		names[i] = s.Name
	}

	tags, err := e.db.IngestTags(documentID, names)
	if err != nil {
		return nil, err
	}

	e.log.Info("document ingested",
		zap.String("document_id", documentID),
		zap.Int("tags", len(tags)))
	return tags, nil
}

// Merge collapses the tag named from into the tag named to and returns
// the survivor. The source must exist; the target is created on demand.
func (e *Engine) Merge(fromName, toName string) (*store.Tag, error) {
	if tagger.Normalize(fromName) == "" {
		return nil, fmt.Errorf("%w: empty merge source", ErrInvalidInput)
	}
	if tagger.Normalize(toName) == "" {
		return nil, fmt.Errorf("%w: empty merge target", ErrInvalidInput)
	}

	to, err := e.db.MergeTags(fromName, toName)
	if err != nil {
		return nil, err
	}

	e.log.Info("tags merged",
		zap.String("from", fromName),
		zap.String("to", to.Norm))
	return to, nil
}
