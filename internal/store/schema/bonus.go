package schema

import (
	"time"
)

// UserBonusAccount represents the user_bonus_accounts table - one running balance per user
type UserBonusAccount struct {
	// UserID is the account owner
	UserID string `gorm:"column:user_id;primaryKey;type:text"`
	// TokenBalance always equals the sum of the user's transactions
	TokenBalance int64 `gorm:"column:token_balance;not null;default:0;check:chk_token_balance_non_negative,token_balance >= 0"`
	// LastUpdated is the time of the last credit
	LastUpdated time.Time `gorm:"column:last_updated;not null;type:timestamptz"`
}

// TableName specifies the table name for the UserBonusAccount model
func (UserBonusAccount) TableName() string {
	return "user_bonus_accounts"
}

// BonusTransaction represents the bonus_transactions table - append-only ledger entries
type BonusTransaction struct {
	// ID is a ULID; its lexical order follows insertion order
	ID              string  `gorm:"column:id;primaryKey;type:text"`
	UserID          string  `gorm:"column:user_id;not null;type:text;index:idx_bonus_transactions_user_created,priority:1"`
	TransactionType string  `gorm:"column:transaction_type;not null;type:text"`
	TokensAmount    int64   `gorm:"column:tokens_amount;not null;check:chk_tokens_amount_positive,tokens_amount > 0"`
	ReasonCode      string  `gorm:"column:reason_code;not null;type:text"`
	Description     string  `gorm:"column:description;not null;type:text"`
	RelatedLinkID   *string `gorm:"column:related_link_id;type:text"`
	RelatedEventID  *string `gorm:"column:related_event_id;type:text"`
	// IdempotencyKey deduplicates awards for the same qualifying event
	IdempotencyKey *string   `gorm:"column:idempotency_key;type:text;uniqueIndex:idx_bonus_transactions_idempotency_key"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;type:timestamptz;index:idx_bonus_transactions_user_created,priority:2"`
}

// TableName specifies the table name for the BonusTransaction model
func (BonusTransaction) TableName() string {
	return "bonus_transactions"
}
