package store

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/traittune/sharing/internal/domain"
	"github.com/traittune/sharing/internal/store/schema"
)

func marshalMetadata(m domain.Metadata) (datatypes.JSON, error) {
	if len(m) == 0 {
		return datatypes.JSON("{}"), nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return datatypes.JSON(b), nil
}

func unmarshalMetadata(raw datatypes.JSON) (domain.Metadata, error) {
	m := domain.Metadata{}
	if len(raw) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}
	return m, nil
}

// cloneMetadata returns a shallow copy so callers never share maps with the store
func cloneMetadata(m domain.Metadata) domain.Metadata {
	out := make(domain.Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func linkToSchema(l *domain.SharingLink) (*schema.SharingLink, error) {
	meta, err := marshalMetadata(l.Metadata)
	if err != nil {
		return nil, err
	}
	return &schema.SharingLink{
		ID:           l.ID,
		SharerUserID: l.SharerUserID,
		LinkType:     string(l.LinkType),
		UniqueToken:  l.UniqueToken,
		TargetEmail:  l.TargetEmail,
		ReportID:     l.ReportID,
		Status:       string(l.Status),
		Metadata:     meta,
		ExpiresAt:    l.ExpiresAt,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}, nil
}

// linkFromSchema maps a row to the domain type. Derived URLs are left to the registry.
func linkFromSchema(l *schema.SharingLink) (*domain.SharingLink, error) {
	meta, err := unmarshalMetadata(l.Metadata)
	if err != nil {
		return nil, err
	}
	return &domain.SharingLink{
		ID:           l.ID,
		SharerUserID: l.SharerUserID,
		LinkType:     domain.LinkType(l.LinkType),
		UniqueToken:  l.UniqueToken,
		TargetEmail:  l.TargetEmail,
		ReportID:     l.ReportID,
		Status:       domain.LinkStatus(l.Status),
		Metadata:     meta,
		ExpiresAt:    l.ExpiresAt,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}, nil
}

func eventToSchema(e *domain.LinkEvent) (*schema.LinkEvent, error) {
	meta, err := marshalMetadata(e.Metadata)
	if err != nil {
		return nil, err
	}
	return &schema.LinkEvent{
		ID:              e.ID,
		LinkID:          e.LinkID,
		RecipientUserID: e.RecipientUserID,
		EventType:       string(e.EventType),
		IPAddress:       e.IPAddress,
		UserAgent:       e.UserAgent,
		Metadata:        meta,
		CreatedAt:       e.CreatedAt,
	}, nil
}

func eventFromSchema(e *schema.LinkEvent) (*domain.LinkEvent, error) {
	meta, err := unmarshalMetadata(e.Metadata)
	if err != nil {
		return nil, err
	}
	return &domain.LinkEvent{
		ID:              e.ID,
		LinkID:          e.LinkID,
		RecipientUserID: e.RecipientUserID,
		EventType:       domain.EventType(e.EventType),
		IPAddress:       e.IPAddress,
		UserAgent:       e.UserAgent,
		Metadata:        meta,
		CreatedAt:       e.CreatedAt,
	}, nil
}

func transactionToSchema(t *domain.BonusTransaction) *schema.BonusTransaction {
	return &schema.BonusTransaction{
		ID:              t.ID,
		UserID:          t.UserID,
		TransactionType: string(t.TransactionType),
		TokensAmount:    t.TokensAmount,
		ReasonCode:      string(t.ReasonCode),
		Description:     t.Description,
		RelatedLinkID:   t.RelatedLinkID,
		RelatedEventID:  t.RelatedEventID,
		IdempotencyKey:  t.IdempotencyKey,
		CreatedAt:       t.CreatedAt,
	}
}

func transactionFromSchema(t *schema.BonusTransaction) *domain.BonusTransaction {
	return &domain.BonusTransaction{
		ID:              t.ID,
		UserID:          t.UserID,
		TransactionType: domain.TransactionType(t.TransactionType),
		TokensAmount:    t.TokensAmount,
		ReasonCode:      domain.ReasonCode(t.ReasonCode),
		Description:     t.Description,
		RelatedLinkID:   t.RelatedLinkID,
		RelatedEventID:  t.RelatedEventID,
		IdempotencyKey:  t.IdempotencyKey,
		CreatedAt:       t.CreatedAt,
	}
}

func accountFromSchema(a *schema.UserBonusAccount) *domain.BonusAccount {
	return &domain.BonusAccount{
		UserID:       a.UserID,
		TokenBalance: a.TokenBalance,
		LastUpdated:  a.LastUpdated,
	}
}
