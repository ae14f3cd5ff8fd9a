package adapter

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDGenerator produces link tokens and entity identifiers
//
//go:generate mockgen -source=idgen.go -destination=../mocks/idgen.go -package=mocks -mock_names=IDGenerator=MockIDGenerator
type IDGenerator interface {
	// NewToken returns an opaque 128-bit random token used in link URLs
	NewToken() string
	// NewID returns a unique identifier for links
	NewID() string
	// NewSortableID returns a lexicographically sortable identifier for a record created at t.
	// IDs returned for the same millisecond are strictly increasing.
	NewSortableID(t time.Time) string
}

type idGenerator struct {
	mu      sync.Mutex
	entropy io.Reader
}

// NewIDGenerator creates a generator backed by crypto/rand
func NewIDGenerator() IDGenerator {
	return &idGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (g *idGenerator) NewToken() string {
	return uuid.NewString()
}

func (g *idGenerator) NewID() string {
	return uuid.NewString()
}

func (g *idGenerator) NewSortableID(t time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(t), g.entropy).String()
}
