package repositories

import (
	"context"

	"hotelops/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InventoryTransactionRepository reads the immutable ledger. Inserts happen
// inside the stock ledger's locked transaction, never through this interface.
type InventoryTransactionRepository interface {
	List(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*models.InventoryTransaction, error)
	ListByItem(ctx context.Context, hotelID, itemID uuid.UUID, limit, offset int) ([]*models.InventoryTransaction, error)
}

type inventoryTransactionRepo struct {
	db Database
}

func NewInventoryTransactionRepo(db Database) InventoryTransactionRepository {
	return &inventoryTransactionRepo{db: db}
}

const inventoryTransactionColumns = `id, hotel_id, item_id, transaction_type, qty_base, qty_package,
		recorded_by, issued_to, notes, created_at`

func (r *inventoryTransactionRepo) List(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*models.InventoryTransaction, error) {
	query := `
		SELECT ` + inventoryTransactionColumns + `
		FROM inventory_transactions
		WHERE hotel_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, hotelID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInventoryTransactions(rows)
}

func (r *inventoryTransactionRepo) ListByItem(ctx context.Context, hotelID, itemID uuid.UUID, limit, offset int) ([]*models.InventoryTransaction, error) {
	query := `
		SELECT ` + inventoryTransactionColumns + `
		FROM inventory_transactions
		WHERE hotel_id = $1 AND item_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, hotelID, itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInventoryTransactions(rows)
}

func collectInventoryTransactions(rows pgx.Rows) ([]*models.InventoryTransaction, error) {
	var txns []*models.InventoryTransaction
	for rows.Next() {
		txn := &models.InventoryTransaction{}
		if err := rows.Scan(&txn.ID, &txn.HotelID, &txn.ItemID, &txn.TransactionType, &txn.QtyBase,
			&txn.QtyPackage, &txn.RecordedBy, &txn.IssuedTo, &txn.Notes, &txn.CreatedAt); err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}
