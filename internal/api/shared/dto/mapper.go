package dto

import (
	"github.com/traittune/sharing/internal/domain"
	"github.com/traittune/sharing/internal/scan"
)

// MapLinkToDTO maps a domain link to its API representation
func MapLinkToDTO(link *domain.SharingLink) *LinkResponse {
	if link == nil {
		return nil
	}

	metadata := link.Metadata
	if metadata == nil {
		metadata = domain.Metadata{}
	}

	return &LinkResponse{
		ID:           link.ID,
		SharerUserID: link.SharerUserID,
		LinkType:     link.LinkType,
		UniqueToken:  link.UniqueToken,
		TargetEmail:  link.TargetEmail,
		ReportID:     link.ReportID,
		Status:       link.Status,
		Metadata:     metadata,
		ShareURL:     link.ShareURL,
		QRDataURL:    link.QRDataURL,
		CreatedAt:    link.CreatedAt,
		UpdatedAt:    link.UpdatedAt,
		ExpiresAt:    link.ExpiresAt,
	}
}

// MapEventToDTO maps a domain event to its API representation
func MapEventToDTO(event *domain.LinkEvent) *EventResponse {
	if event == nil {
		return nil
	}

	metadata := event.Metadata
	if metadata == nil {
		metadata = domain.Metadata{}
	}

	return &EventResponse{
		ID:              event.ID,
		LinkID:          event.LinkID,
		EventType:       event.EventType,
		RecipientUserID: event.RecipientUserID,
		IPAddress:       event.IPAddress,
		UserAgent:       event.UserAgent,
		Metadata:        metadata,
		CreatedAt:       event.CreatedAt,
	}
}

// MapEventsToDTO maps a list of events
func MapEventsToDTO(events []domain.LinkEvent) *EventListResponse {
	resp := &EventListResponse{
		Events: make([]EventResponse, 0, len(events)),
		Total:  len(events),
	}
	for i := range events {
		resp.Events = append(resp.Events, *MapEventToDTO(&events[i]))
	}
	return resp
}

// MapTransactionToDTO maps a ledger entry
func MapTransactionToDTO(tx *domain.BonusTransaction) *TransactionResponse {
	if tx == nil {
		return nil
	}

	return &TransactionResponse{
		ID:              tx.ID,
		UserID:          tx.UserID,
		TransactionType: tx.TransactionType,
		TokensAmount:    tx.TokensAmount,
		ReasonCode:      tx.ReasonCode,
		Description:     tx.Description,
		RelatedLinkID:   tx.RelatedLinkID,
		RelatedEventID:  tx.RelatedEventID,
		CreatedAt:       tx.CreatedAt,
	}
}

// MapTransactionsToDTO maps a list of ledger entries
func MapTransactionsToDTO(txs []domain.BonusTransaction) *TransactionListResponse {
	resp := &TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(txs)),
		Total:        len(txs),
	}
	for i := range txs {
		resp.Transactions = append(resp.Transactions, *MapTransactionToDTO(&txs[i]))
	}
	return resp
}

// MapBalanceToDTO maps a bonus account. A nil account reports a zero balance.
func MapBalanceToDTO(userID string, account *domain.BonusAccount) *BalanceResponse {
	resp := &BalanceResponse{UserID: userID}
	if account != nil {
		resp.TokenBalance = account.TokenBalance
		lastUpdated := account.LastUpdated
		resp.LastUpdated = &lastUpdated
	}
	return resp
}

// MapResolutionToDTO maps a scan resolution
func MapResolutionToDTO(r *scan.Resolution) *ScanResponse {
	if r == nil {
		return nil
	}

	return &ScanResponse{
		Action:        string(r.Action),
		SharerUserID:  r.SharerUserID,
		ScannerUserID: r.ScannerUserID,
		RedirectURL:   r.RedirectURL,
		Message:       r.Message,
	}
}
