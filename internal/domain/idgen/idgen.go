// Package idgen produces human-readable identifiers for every record kind.
//
// Each entity type has its own Strategy. Sequence strategies derive the next
// id from the ids already stored; timestamp strategies derive it from the
// clock. Timestamp ids are unique within one process. Sequence ids can
// repeat when two writers race between reading the stored ids and appending.
package idgen

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"akc_operations/internal/domain/entities"
)

var (
	ErrNoStrategy        = errors.New("no id strategy for entity type")
	ErrScopeRequired     = errors.New("id scope is required")
	ErrSequenceExhausted = errors.New("id sequence exhausted")
)

// Existing is one stored id together with the value of its scope column
// (the ProjectID column for estimates). Order follows storage order.
type Existing struct {
	ID    string
	Scope string
}

// Source lists the ids already stored for an entity type.
type Source interface {
	ExistingIDs(ctx context.Context, et entities.EntityType) ([]Existing, error)
}

type Strategy interface {
	// Scope resolves the scope key from the caller's request and the clock.
	Scope(requested string, now time.Time) (string, error)
	// Next returns the next id given the stored ids.
	Next(existing []Existing, scope string, now time.Time) (string, error)
	// UsesExisting reports whether Next needs the stored ids.
	UsesExisting() bool
}

type Generator struct {
	source     Source
	strategies map[entities.EntityType]Strategy
	now        func() time.Time
	mu         sync.Mutex
}

type Option func(*Generator)

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithStrategy replaces the strategy for one entity type.
func WithStrategy(et entities.EntityType, s Strategy) Option {
	return func(g *Generator) { g.strategies[et] = s }
}

// WithLegacyProjectSequence derives project sequences from the last matching
// row rather than the highest suffix.
func WithLegacyProjectSequence() Option {
	return WithStrategy(entities.EntityProject, ProjectStrategy{LastRow: true})
}

func NewGenerator(source Source, opts ...Option) *Generator {
	g := &Generator{
		source: source,
		now:    func() time.Time { return time.Now().UTC() },
		strategies: map[entities.EntityType]Strategy{
			entities.EntityCustomer:         CustomerStrategy{},
			entities.EntityProject:          ProjectStrategy{},
			entities.EntityEstimate:         EstimateStrategy{},
			entities.EntityVendor:           NewSequenceStrategy("VEND-", 3),
			entities.EntitySubcontractor:    NewSequenceStrategy("Sub-", 3),
			entities.EntityTimeLog:          NewTimestampStrategy("TL"),
			entities.EntityMaterialsReceipt: NewTimestampStrategy("MATREC-"),
			entities.EntitySubInvoice:       NewTimestampStrategy("SUBINV-"),
			entities.EntityActivityLog:      NewTimestampStrategy("LOG-"),
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NextID returns the next id for et. scope is the project id for estimates
// and may be empty for every other type.
func (g *Generator) NextID(ctx context.Context, et entities.EntityType, scope string) (string, error) {
	s, ok := g.strategies[et]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoStrategy, et)
	}

	now := g.now()
	resolved, err := s.Scope(scope, now)
	if err != nil {
		return "", fmt.Errorf("%s id: %w", et, err)
	}

	if !s.UsesExisting() {
		return s.Next(nil, resolved, now)
	}

	// Serializes the scan only; the append happens after the lock is
	// released.
	g.mu.Lock()
	defer g.mu.Unlock()

	existing, err := g.source.ExistingIDs(ctx, et)
	if err != nil {
		return "", err
	}
	return s.Next(existing, resolved, now)
}
