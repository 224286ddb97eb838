package engine

import (
	"fmt"
	"time"

	"github.com/pierkiroule/tagweave/internal/store"
	"github.com/pierkiroule/tagweave/internal/tagger"
)

// RelatedTo returns the neighbors of the named tag ordered by edge
// weight. An unknown name yields store.ErrTagNotFound.
func (e *Engine) RelatedTo(name string, limit int) ([]store.TagScore, error) {
	if tagger.Normalize(name) == "" {
		return nil, fmt.Errorf("%w: empty tag name", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	tag, err := e.db.GetTagByName(name)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, fmt.Errorf("related to %q: %w", name, store.ErrTagNotFound)
	}
	return e.db.RelatedTags(tag.ID, limit)
}

// SuggestFromSeeds aggregates co-occurrence weight across the seed
// tags' neighborhoods. Seeds that do not resolve are dropped; if none
// resolve the suggestion list is empty.
func (e *Engine) SuggestFromSeeds(seeds []string, limit int) ([]store.TagScore, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: no seed tags", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	ids := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		tag, err := e.db.GetTagByName(seed)
		if err != nil {
			return nil, err
		}
		if tag != nil {
			ids = append(ids, tag.ID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return e.db.SuggestTags(ids, limit)
}

// Trending returns the most frequent tags seen inside the trailing
// window. Non-positive arguments fall back to the service defaults.
func (e *Engine) Trending(windowDays, limit int) ([]store.TagScore, error) {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	since := time.Now().AddDate(0, 0, -windowDays).UnixMilli()
	return e.db.TrendingTags(since, limit)
}
