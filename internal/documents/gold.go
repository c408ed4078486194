package documents

import (
	"time"

	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/localnerve/goldphotos/internal/docstore"
	"github.com/localnerve/goldphotos/internal/types"
)

// IapPurchaseDocument is a fulfilled purchase receipt. The receipt id is the document id.
type IapPurchaseDocument struct {
	Base
	UserID        string    `json:"userId"`
	ProductID     string    `json:"productId"`
	GoldIncrement int64     `json:"goldIncrement"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Document converts the purchase to its stored form
func (d IapPurchaseDocument) Document() (docstore.Document, error) {
	return encode(d.Base, docstore.Index{
		OwnerID:   d.UserID,
		LookupKey: d.ProductID,
		Score:     d.GoldIncrement,
		SortTime:  SortTime(d.CreatedAt),
	}, nil, d)
}

// ToContract maps the document to its wire contract
func (d IapPurchaseDocument) ToContract() contracts.IapPurchaseContract {
	return contracts.IapPurchaseContract{
		ID:            d.ID,
		UserID:        d.UserID,
		ProductID:     d.ProductID,
		GoldIncrement: types.FlexInt(d.GoldIncrement),
	}
}

// IapPurchaseFromContract maps a wire contract to a document
func IapPurchaseFromContract(c contracts.IapPurchaseContract, now time.Time) IapPurchaseDocument {
	return IapPurchaseDocument{
		Base:          newBase(TypeIapPurchase, c.ID),
		UserID:        c.UserID,
		ProductID:     c.ProductID,
		GoldIncrement: int64(c.GoldIncrement.Int()),
		CreatedAt:     now,
	}
}

// GoldTransactionDocument is the ledger record written by the gold-transfer procedure
type GoldTransactionDocument struct {
	Base
	ToUserID        string    `json:"toUserId"`
	FromUserID      string    `json:"fromUserId"`
	Amount          int64     `json:"amount"`
	TransactionType string    `json:"transactionType"`
	PhotoID         string    `json:"photoId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewGoldTransaction creates a ledger record at the given schema version
func NewGoldTransaction(id, version string) GoldTransactionDocument {
	return GoldTransactionDocument{Base: Base{ID: id, DocumentType: TypeGoldTransaction, DocumentVersion: version}}
}

// Document converts the ledger record to its stored form
func (d GoldTransactionDocument) Document() (docstore.Document, error) {
	return encode(d.Base, docstore.Index{
		OwnerID:   d.ToUserID,
		LookupKey: d.FromUserID,
		GroupID:   d.PhotoID,
		Status:    d.TransactionType,
		Score:     d.Amount,
		SortTime:  SortTime(d.CreatedAt),
	}, nil, d)
}

// ToContract maps the document to its wire contract
func (d GoldTransactionDocument) ToContract() contracts.GoldTransactionContract {
	return contracts.GoldTransactionContract{
		ID:              d.ID,
		ToUserID:        d.ToUserID,
		FromUserID:      d.FromUserID,
		Amount:          d.Amount,
		TransactionType: d.TransactionType,
		PhotoID:         d.PhotoID,
		CreatedAt:       d.CreatedAt,
	}
}
