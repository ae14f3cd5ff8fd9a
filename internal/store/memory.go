package store

import (
	"context"
	"sort"
	"sync"

	"github.com/traittune/sharing/internal/domain"
)

// memoryStore keeps everything in process memory. It is used by tests and by the
// service when no database is configured.
type memoryStore struct {
	linksMu sync.RWMutex
	links   map[string]*domain.SharingLink
	byToken map[string]string

	eventsMu sync.RWMutex
	events   map[string]*eventBucket

	accountsMu sync.RWMutex
	accounts   map[string]*accountBucket
	// idempotency maps an idempotency key to a transaction ID, guarded by accountsMu
	idempotency map[string]string

	userLocks *KeyedMutex
}

type eventBucket struct {
	mu     sync.RWMutex
	events []domain.LinkEvent
}

type accountBucket struct {
	account      domain.BonusAccount
	transactions []domain.BonusTransaction
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() Store {
	return &memoryStore{
		links:       make(map[string]*domain.SharingLink),
		byToken:     make(map[string]string),
		events:      make(map[string]*eventBucket),
		accounts:    make(map[string]*accountBucket),
		idempotency: make(map[string]string),
		userLocks:   NewKeyedMutex(),
	}
}

func copyLink(l *domain.SharingLink) *domain.SharingLink {
	c := *l
	c.Metadata = cloneMetadata(l.Metadata)
	return &c
}

func copyEvent(e *domain.LinkEvent) domain.LinkEvent {
	c := *e
	c.Metadata = cloneMetadata(e.Metadata)
	return c
}

// CreateLink inserts a new link
func (s *memoryStore) CreateLink(ctx context.Context, link *domain.SharingLink) error {
	s.linksMu.Lock()
	defer s.linksMu.Unlock()

	if _, taken := s.byToken[link.UniqueToken]; taken {
		return ErrDuplicateToken
	}

	s.links[link.ID] = copyLink(link)
	s.byToken[link.UniqueToken] = link.ID
	return nil
}

// GetLinkByID returns the link or nil
func (s *memoryStore) GetLinkByID(ctx context.Context, id string) (*domain.SharingLink, error) {
	s.linksMu.RLock()
	defer s.linksMu.RUnlock()

	l, ok := s.links[id]
	if !ok {
		return nil, nil
	}
	return copyLink(l), nil
}

// GetLinkByToken returns the link or nil
func (s *memoryStore) GetLinkByToken(ctx context.Context, token string) (*domain.SharingLink, error) {
	s.linksMu.RLock()
	defer s.linksMu.RUnlock()

	id, ok := s.byToken[token]
	if !ok {
		return nil, nil
	}
	return copyLink(s.links[id]), nil
}

// ListLinksBySharer returns a sharer's links, newest first
func (s *memoryStore) ListLinksBySharer(ctx context.Context, sharerUserID string) ([]domain.SharingLink, error) {
	s.linksMu.RLock()
	defer s.linksMu.RUnlock()

	links := make([]domain.SharingLink, 0)
	for _, l := range s.links {
		if l.SharerUserID == sharerUserID {
			links = append(links, *copyLink(l))
		}
	}

	sort.SliceStable(links, func(i, j int) bool {
		if links[i].CreatedAt.Equal(links[j].CreatedAt) {
			return links[i].ID > links[j].ID
		}
		return links[i].CreatedAt.After(links[j].CreatedAt)
	})
	return links, nil
}

// UpdateLinkStatus applies a status transition
func (s *memoryStore) UpdateLinkStatus(ctx context.Context, input UpdateLinkStatusInput) (bool, error) {
	s.linksMu.Lock()
	defer s.linksMu.Unlock()

	l, ok := s.links[input.LinkID]
	if !ok {
		return false, nil
	}
	if input.FromStatus != nil && l.Status != *input.FromStatus {
		return false, nil
	}

	l.Status = input.Status
	l.UpdatedAt = input.UpdatedAt
	if len(input.Metadata) > 0 {
		if l.Metadata == nil {
			l.Metadata = domain.Metadata{}
		}
		for k, v := range input.Metadata {
			l.Metadata[k] = v
		}
	}
	return true, nil
}

func (s *memoryStore) bucket(linkID string) *eventBucket {
	s.eventsMu.RLock()
	b, ok := s.events[linkID]
	s.eventsMu.RUnlock()
	if ok {
		return b
	}

	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	if b, ok = s.events[linkID]; !ok {
		b = &eventBucket{}
		s.events[linkID] = b
	}
	return b
}

// AppendEvent appends an event to its link's log
func (s *memoryStore) AppendEvent(ctx context.Context, event *domain.LinkEvent) error {
	b := s.bucket(event.LinkID)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, copyEvent(event))
	return nil
}

// ListEventsByLink returns the events of a link in creation order
func (s *memoryStore) ListEventsByLink(ctx context.Context, linkID string) ([]domain.LinkEvent, error) {
	s.eventsMu.RLock()
	b, ok := s.events[linkID]
	s.eventsMu.RUnlock()
	if !ok {
		return []domain.LinkEvent{}, nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	events := make([]domain.LinkEvent, 0, len(b.events))
	for i := range b.events {
		events = append(events, copyEvent(&b.events[i]))
	}

	// Appends are already in insertion order; the stable sort only reorders entries
	// whose timestamps were supplied out of order.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.Before(events[j].CreatedAt)
	})
	return events, nil
}

// CreditAccount credits the user's balance and appends the transaction under the user's lock
func (s *memoryStore) CreditAccount(ctx context.Context, tx *domain.BonusTransaction) (*domain.BonusTransaction, bool, error) {
	unlock := s.userLocks.Lock(tx.UserID)
	defer unlock()

	s.accountsMu.Lock()
	defer s.accountsMu.Unlock()

	if tx.IdempotencyKey != nil {
		if existingID, ok := s.idempotency[*tx.IdempotencyKey]; ok {
			for _, bucket := range s.accounts {
				for i := range bucket.transactions {
					if bucket.transactions[i].ID == existingID {
						existing := bucket.transactions[i]
						return &existing, false, nil
					}
				}
			}
		}
	}

	bucket, ok := s.accounts[tx.UserID]
	if !ok {
		bucket = &accountBucket{account: domain.BonusAccount{UserID: tx.UserID}}
		s.accounts[tx.UserID] = bucket
	}

	bucket.account.TokenBalance += tx.TokensAmount
	bucket.account.LastUpdated = tx.CreatedAt
	bucket.transactions = append(bucket.transactions, *tx)
	if tx.IdempotencyKey != nil {
		s.idempotency[*tx.IdempotencyKey] = tx.ID
	}

	stored := *tx
	return &stored, true, nil
}

// GetAccount returns the user's account or nil
func (s *memoryStore) GetAccount(ctx context.Context, userID string) (*domain.BonusAccount, error) {
	s.accountsMu.RLock()
	defer s.accountsMu.RUnlock()

	bucket, ok := s.accounts[userID]
	if !ok {
		return nil, nil
	}
	account := bucket.account
	return &account, nil
}

// ListTransactions returns a user's transactions in creation order
func (s *memoryStore) ListTransactions(ctx context.Context, userID string) ([]domain.BonusTransaction, error) {
	s.accountsMu.RLock()
	defer s.accountsMu.RUnlock()

	bucket, ok := s.accounts[userID]
	if !ok {
		return []domain.BonusTransaction{}, nil
	}

	txs := make([]domain.BonusTransaction, len(bucket.transactions))
	copy(txs, bucket.transactions)
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CreatedAt.Before(txs[j].CreatedAt)
	})
	return txs, nil
}
