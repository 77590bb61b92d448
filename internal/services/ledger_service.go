package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hotelops/internal/caching"
	"hotelops/internal/common"
	"hotelops/internal/models"
	"hotelops/internal/repositories"
)

// LedgerEntry describes one requested stock mutation. QtyBase is a positive
// magnitude for receive/issue/return/wastage; Adjust takes a signed delta
// instead.
type LedgerEntry struct {
	ItemID     uuid.UUID
	QtyBase    float64
	QtyPackage *float64
	RecordedBy uuid.UUID
	IssuedTo   *uuid.UUID
	Notes      *string
}

// StockLedger owns every write to item stock. Each primitive runs inside one
// database transaction with the item row locked FOR UPDATE, so concurrent
// calls against the same item serialize: the second call's stock read sees
// the first call's committed write. A failure rolls back both the stock
// update and the ledger row together.
type StockLedger interface {
	Receive(ctx context.Context, hotelID uuid.UUID, entry LedgerEntry) (*models.InventoryTransaction, error)
	Issue(ctx context.Context, hotelID uuid.UUID, entry LedgerEntry) (*models.InventoryTransaction, error)
	Return(ctx context.Context, hotelID uuid.UUID, entry LedgerEntry) (*models.InventoryTransaction, error)
	Wastage(ctx context.Context, hotelID uuid.UUID, entry LedgerEntry) (*models.InventoryTransaction, error)
	Adjust(ctx context.Context, hotelID uuid.UUID, entry LedgerEntry) (*models.InventoryTransaction, error)
	Apply(ctx context.Context, hotelID uuid.UUID, transactionType string, entry LedgerEntry) (*models.InventoryTransaction, error)
}

type stockLedger struct {
	db       repositories.Database
	cacheSvc caching.CacheService
}

func NewStockLedger(db repositories.Database, cacheSvc caching.CacheService) StockLedger {
	return &stockLedger{db: db, cacheSvc: cacheSvc}
}

func (s *stockLedger) Receive(ctx context.Context, hotelID uuid.UUID, entry LedgerEntry) (*models.InventoryTransaction, error) {
	return s.Apply(ctx, hotelID, models.TxnReceive, entry)
}

func (s *stockLedger) Issue(ctx context.Context, hotelID uuid.UUID, entry LedgerEntry) (*models.InventoryTransaction, error) {
	return s.Apply(ctx, hotelID, models.TxnIssue, entry)
}

func (s *stockLedger) Return(ctx context.Context, hotelID uuid.UUID, entry LedgerEntry) (*models.InventoryTransaction, error) {
	return s.Apply(ctx, hotelID, models.TxnReturn, entry)
}

func (s *stockLedger) Wastage(ctx context.Context, hotelID uuid.UUID, entry LedgerEntry) (*models.InventoryTransaction, error) {
	return s.Apply(ctx, hotelID, models.TxnWastage, entry)
}

func (s *stockLedger) Adjust(ctx context.Context, hotelID uuid.UUID, entry LedgerEntry) (*models.InventoryTransaction, error) {
	return s.Apply(ctx, hotelID, models.TxnAdjustment, entry)
}

// Apply validates the entry against the current locked stock and commits the
// stock update and ledger row atomically.
func (s *stockLedger) Apply(ctx context.Context, hotelID uuid.UUID, transactionType string, entry LedgerEntry) (*models.InventoryTransaction, error) {
	if !models.ValidTransactionType(transactionType) {
		return nil, common.NewValidationError("transaction_type", "unknown transaction type "+transactionType)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var currentStock float64
	err = tx.QueryRow(ctx, `
		SELECT base_stock_qty
		FROM inventory_items
		WHERE hotel_id = $1 AND id = $2 AND deleted_at IS NULL
		FOR UPDATE
	`, hotelID, entry.ItemID).Scan(&currentStock)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &common.NotFoundError{Resource: "inventory item", ID: entry.ItemID.String()}
	}
	if err != nil {
		return nil, err
	}

	delta, err := signedDelta(transactionType, entry.QtyBase, currentStock, entry.ItemID)
	if err != nil {
		return nil, err
	}
	newStock := currentStock + delta

	// Both mirrored fields carry the base-unit quantity.
	_, err = tx.Exec(ctx, `
		UPDATE inventory_items
		SET stock_qty = $1, base_stock_qty = $1, updated_at = NOW()
		WHERE hotel_id = $2 AND id = $3
	`, newStock, hotelID, entry.ItemID)
	if err != nil {
		return nil, err
	}

	txn := &models.InventoryTransaction{
		ID:              uuid.New(),
		HotelID:         hotelID,
		ItemID:          entry.ItemID,
		TransactionType: transactionType,
		QtyBase:         delta,
		QtyPackage:      entry.QtyPackage,
		RecordedBy:      entry.RecordedBy,
		IssuedTo:        entry.IssuedTo,
		Notes:           entry.Notes,
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO inventory_transactions (id, hotel_id, item_id, transaction_type, qty_base,
			qty_package, recorded_by, issued_to, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`, txn.ID, txn.HotelID, txn.ItemID, txn.TransactionType, txn.QtyBase, txn.QtyPackage,
		txn.RecordedBy, txn.IssuedTo, txn.Notes)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	// Cached snapshots are stale once the commit lands.
	if s.cacheSvc != nil {
		if cacheErr := s.cacheSvc.DeleteItem(ctx, hotelID, entry.ItemID); cacheErr != nil {
			log.Printf("Failed to invalidate cache for item %s: %v", entry.ItemID.String(), cacheErr)
		}
	}

	return txn, nil
}

// signedDelta resolves the transaction type to the signed stock effect and
// enforces the non-negativity invariant against the locked stock value.
func signedDelta(transactionType string, qty, currentStock float64, itemID uuid.UUID) (float64, error) {
	switch transactionType {
	case models.TxnReceive, models.TxnReturn:
		if qty <= 0 {
			return 0, common.NewValidationError("qty_base", "quantity must be positive")
		}
		return qty, nil
	case models.TxnIssue, models.TxnWastage:
		if qty <= 0 {
			return 0, common.NewValidationError("qty_base", "quantity must be positive")
		}
		if qty > currentStock {
			return 0, &common.InsufficientStockError{
				ItemID:    itemID.String(),
				Available: currentStock,
				Requested: qty,
			}
		}
		return -qty, nil
	case models.TxnAdjustment:
		if qty == 0 {
			return 0, common.NewValidationError("qty_base", "zero-delta adjustment is not allowed")
		}
		if currentStock+qty < 0 {
			return 0, &common.InsufficientStockError{
				ItemID:    itemID.String(),
				Available: currentStock,
				Requested: -qty,
			}
		}
		return qty, nil
	}
	return 0, common.NewValidationError("transaction_type", "unknown transaction type "+transactionType)
}
