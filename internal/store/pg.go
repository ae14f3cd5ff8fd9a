package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/traittune/sharing/internal/domain"
	"github.com/traittune/sharing/internal/store/schema"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint violation
const uniqueViolation = "23505"

type pgStore struct {
	db *gorm.DB
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// primary pins reads that must observe the caller's own writes (event
// histories and balances) to the primary when a read replica is registered
func (s *pgStore) primary() *gorm.DB {
	if hasDBResolver(s.db) {
		return s.db.Clauses(dbresolver.Write)
	}
	return s.db
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// AutoMigrate creates or updates the sharing tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&schema.SharingLink{},
		&schema.LinkEvent{},
		&schema.UserBonusAccount{},
		&schema.BonusTransaction{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0, defaults from NormalizeConnectionPoolSettings are used.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// RegisterReadReplica routes reads to the replica at readDSN. Writes and
// reads inside transactions stay on the primary.
func RegisterReadReplica(db *gorm.DB, readDSN string) error {
	if err := db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{postgres.Open(readDSN)},
		Policy:   dbresolver.RandomPolicy{},
	})); err != nil {
		return fmt.Errorf("failed to register read replica: %w", err)
	}
	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// isDuplicateKey reports whether err is a unique constraint violation, whether or not
// the connection translates driver errors
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// CreateLink inserts a new link
func (s *pgStore) CreateLink(ctx context.Context, link *domain.SharingLink) error {
	row, err := linkToSchema(link)
	if err != nil {
		return err
	}

	// Run inside a (nested) transaction so a unique violation only rolls back to a savepoint
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateToken
		}
		return fmt.Errorf("failed to create link: %w", err)
	}
	return nil
}

// getLink runs a single-link lookup, retrying on the primary when a replica misses
func (s *pgStore) getLink(ctx context.Context, where string, arg string) (*domain.SharingLink, error) {
	var row schema.SharingLink
	query := func(db *gorm.DB) error {
		return db.WithContext(ctx).Where(where, arg).First(&row).Error
	}

	err := query(s.db)
	if errors.Is(err, gorm.ErrRecordNotFound) && hasDBResolver(s.db) {
		// Replica can lag behind primary; retry on primary before returning nil.
		err = query(s.db.Clauses(dbresolver.Write))
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	return linkFromSchema(&row)
}

// GetLinkByID retrieves a link by its ID
func (s *pgStore) GetLinkByID(ctx context.Context, id string) (*domain.SharingLink, error) {
	return s.getLink(ctx, "id = ?", id)
}

// GetLinkByToken retrieves a link by its unique token
func (s *pgStore) GetLinkByToken(ctx context.Context, token string) (*domain.SharingLink, error) {
	return s.getLink(ctx, "unique_token = ?", token)
}

// ListLinksBySharer retrieves all links issued by a sharer, newest first
func (s *pgStore) ListLinksBySharer(ctx context.Context, sharerUserID string) ([]domain.SharingLink, error) {
	var rows []schema.SharingLink
	err := s.db.WithContext(ctx).
		Where("sharer_user_id = ?", sharerUserID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list links for sharer %s: %w", sharerUserID, err)
	}

	links := make([]domain.SharingLink, 0, len(rows))
	for i := range rows {
		l, err := linkFromSchema(&rows[i])
		if err != nil {
			return nil, err
		}
		links = append(links, *l)
	}
	return links, nil
}

// UpdateLinkStatus applies a status transition, optionally conditioned on the current status
func (s *pgStore) UpdateLinkStatus(ctx context.Context, input UpdateLinkStatusInput) (bool, error) {
	updates := map[string]any{
		"status":     string(input.Status),
		"updated_at": input.UpdatedAt,
	}
	if len(input.Metadata) > 0 {
		meta, err := marshalMetadata(input.Metadata)
		if err != nil {
			return false, err
		}
		updates["metadata"] = gorm.Expr("metadata || ?::jsonb", string(meta))
	}

	query := s.db.WithContext(ctx).
		Model(&schema.SharingLink{}).
		Where("id = ?", input.LinkID)
	if input.FromStatus != nil {
		query = query.Where("status = ?", string(*input.FromStatus))
	}

	result := query.Updates(updates)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update link status: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// AppendEvent inserts an event into the link event log
func (s *pgStore) AppendEvent(ctx context.Context, event *domain.LinkEvent) error {
	row, err := eventToSchema(event)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

// ListEventsByLink retrieves a link's events in creation order
func (s *pgStore) ListEventsByLink(ctx context.Context, linkID string) ([]domain.LinkEvent, error) {
	var rows []schema.LinkEvent
	err := s.primary().WithContext(ctx).
		Where("link_id = ?", linkID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events for link %s: %w", linkID, err)
	}

	events := make([]domain.LinkEvent, 0, len(rows))
	for i := range rows {
		e, err := eventFromSchema(&rows[i])
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, nil
}

// CreditAccount credits a user's balance and records the transaction in one database transaction.
// The account row is locked so concurrent credits to the same user serialize.
func (s *pgStore) CreditAccount(ctx context.Context, t *domain.BonusTransaction) (*domain.BonusTransaction, bool, error) {
	var stored *domain.BonusTransaction
	created := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Make sure the account exists, then lock it
		account := schema.UserBonusAccount{
			UserID:       t.UserID,
			TokenBalance: 0,
			LastUpdated:  t.CreatedAt,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&account).Error; err != nil {
			return fmt.Errorf("failed to create bonus account: %w", err)
		}

		var locked schema.UserBonusAccount
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", t.UserID).
			First(&locked).Error; err != nil {
			return fmt.Errorf("failed to lock bonus account: %w", err)
		}

		// Idempotency is checked under the account lock
		if t.IdempotencyKey != nil {
			var existing schema.BonusTransaction
			err := tx.Where("idempotency_key = ?", *t.IdempotencyKey).First(&existing).Error
			if err == nil {
				stored = transactionFromSchema(&existing)
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check idempotency key: %w", err)
			}
		}

		row := transactionToSchema(t)
		if err := tx.Create(row).Error; err != nil {
			return fmt.Errorf("failed to create bonus transaction: %w", err)
		}

		if err := tx.Model(&schema.UserBonusAccount{}).
			Where("user_id = ?", t.UserID).
			Updates(map[string]any{
				"token_balance": gorm.Expr("token_balance + ?", t.TokensAmount),
				"last_updated":  t.CreatedAt,
			}).Error; err != nil {
			return fmt.Errorf("failed to update bonus balance: %w", err)
		}

		stored = transactionFromSchema(row)
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return stored, created, nil
}

// GetAccount retrieves a user's bonus account
func (s *pgStore) GetAccount(ctx context.Context, userID string) (*domain.BonusAccount, error) {
	var row schema.UserBonusAccount
	err := s.primary().WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bonus account: %w", err)
	}
	return accountFromSchema(&row), nil
}

// ListTransactions retrieves a user's transactions in creation order
func (s *pgStore) ListTransactions(ctx context.Context, userID string) ([]domain.BonusTransaction, error) {
	var rows []schema.BonusTransaction
	err := s.primary().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bonus transactions for user %s: %w", userID, err)
	}

	txs := make([]domain.BonusTransaction, 0, len(rows))
	for i := range rows {
		txs = append(txs, *transactionFromSchema(&rows[i]))
	}
	return txs, nil
}
