package services

import (
	"context"
	"testing"

	"hotelops/internal/common"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type StockLedgerTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	ledger  StockLedger
	hotelID uuid.UUID
	itemID  uuid.UUID
	userID  uuid.UUID
	ctx     context.Context
}

func (suite *StockLedgerTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.ledger = NewStockLedger(mock, nil)
	suite.hotelID = uuid.New()
	suite.itemID = uuid.New()
	suite.userID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *StockLedgerTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestStockLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(StockLedgerTestSuite))
}

func (suite *StockLedgerTestSuite) expectLockedStock(stock float64) {
	suite.mock.ExpectQuery(`SELECT base_stock_qty`).
		WithArgs(suite.hotelID, suite.itemID).
		WillReturnRows(pgxmock.NewRows([]string{"base_stock_qty"}).AddRow(stock))
}

func (suite *StockLedgerTestSuite) expectMirroredUpdate(newStock float64) {
	suite.mock.ExpectExec(`UPDATE inventory_items`).
		WithArgs(newStock, suite.hotelID, suite.itemID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
}

func (suite *StockLedgerTestSuite) expectLedgerInsert(transactionType string, delta float64) {
	suite.mock.ExpectExec(`INSERT INTO inventory_transactions`).
		WithArgs(pgxmock.AnyArg(), suite.hotelID, suite.itemID, transactionType, delta,
			(*float64)(nil), suite.userID, (*uuid.UUID)(nil), (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
}

func (suite *StockLedgerTestSuite) TestReceive_Success() {
	suite.mock.ExpectBegin()
	suite.expectLockedStock(10)
	suite.expectMirroredUpdate(15)
	suite.expectLedgerInsert("receive", 5)
	suite.mock.ExpectCommit()

	txn, err := suite.ledger.Receive(suite.ctx, suite.hotelID, LedgerEntry{
		ItemID:     suite.itemID,
		QtyBase:    5,
		RecordedBy: suite.userID,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5.0, txn.QtyBase)
	assert.Equal(suite.T(), "receive", txn.TransactionType)
}

func (suite *StockLedgerTestSuite) TestIssue_Success() {
	suite.mock.ExpectBegin()
	suite.expectLockedStock(10)
	suite.expectMirroredUpdate(6)
	suite.expectLedgerInsert("issue", -4)
	suite.mock.ExpectCommit()

	txn, err := suite.ledger.Issue(suite.ctx, suite.hotelID, LedgerEntry{
		ItemID:     suite.itemID,
		QtyBase:    4,
		RecordedBy: suite.userID,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), -4.0, txn.QtyBase)
}

func (suite *StockLedgerTestSuite) TestIssue_InsufficientStock() {
	suite.mock.ExpectBegin()
	suite.expectLockedStock(3)
	suite.mock.ExpectRollback()

	_, err := suite.ledger.Issue(suite.ctx, suite.hotelID, LedgerEntry{
		ItemID:     suite.itemID,
		QtyBase:    5,
		RecordedBy: suite.userID,
	})

	var stockErr *common.InsufficientStockError
	assert.ErrorAs(suite.T(), err, &stockErr)
	assert.Equal(suite.T(), 3.0, stockErr.Available)
	assert.Equal(suite.T(), 5.0, stockErr.Requested)
}

func (suite *StockLedgerTestSuite) TestWastage_ExactStockDrainsToZero() {
	suite.mock.ExpectBegin()
	suite.expectLockedStock(7)
	suite.expectMirroredUpdate(0)
	suite.expectLedgerInsert("wastage", -7)
	suite.mock.ExpectCommit()

	txn, err := suite.ledger.Wastage(suite.ctx, suite.hotelID, LedgerEntry{
		ItemID:     suite.itemID,
		QtyBase:    7,
		RecordedBy: suite.userID,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), -7.0, txn.QtyBase)
}

func (suite *StockLedgerTestSuite) TestAdjust_NegativeDelta() {
	suite.mock.ExpectBegin()
	suite.expectLockedStock(10)
	suite.expectMirroredUpdate(8)
	suite.expectLedgerInsert("adjustment", -2)
	suite.mock.ExpectCommit()

	txn, err := suite.ledger.Adjust(suite.ctx, suite.hotelID, LedgerEntry{
		ItemID:     suite.itemID,
		QtyBase:    -2,
		RecordedBy: suite.userID,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), -2.0, txn.QtyBase)
}

func (suite *StockLedgerTestSuite) TestAdjust_ZeroDeltaRejected() {
	suite.mock.ExpectBegin()
	suite.expectLockedStock(10)
	suite.mock.ExpectRollback()

	_, err := suite.ledger.Adjust(suite.ctx, suite.hotelID, LedgerEntry{
		ItemID:     suite.itemID,
		QtyBase:    0,
		RecordedBy: suite.userID,
	})

	var validationErr *common.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
}

func (suite *StockLedgerTestSuite) TestAdjust_CannotDriveStockNegative() {
	suite.mock.ExpectBegin()
	suite.expectLockedStock(4)
	suite.mock.ExpectRollback()

	_, err := suite.ledger.Adjust(suite.ctx, suite.hotelID, LedgerEntry{
		ItemID:     suite.itemID,
		QtyBase:    -5,
		RecordedBy: suite.userID,
	})

	var stockErr *common.InsufficientStockError
	assert.ErrorAs(suite.T(), err, &stockErr)
}

func (suite *StockLedgerTestSuite) TestReceive_NegativeQtyRejected() {
	suite.mock.ExpectBegin()
	suite.expectLockedStock(10)
	suite.mock.ExpectRollback()

	_, err := suite.ledger.Receive(suite.ctx, suite.hotelID, LedgerEntry{
		ItemID:     suite.itemID,
		QtyBase:    -1,
		RecordedBy: suite.userID,
	})

	var validationErr *common.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
}

func (suite *StockLedgerTestSuite) TestApply_ItemNotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`SELECT base_stock_qty`).
		WithArgs(suite.hotelID, suite.itemID).
		WillReturnRows(pgxmock.NewRows([]string{"base_stock_qty"}))
	suite.mock.ExpectRollback()

	_, err := suite.ledger.Issue(suite.ctx, suite.hotelID, LedgerEntry{
		ItemID:     suite.itemID,
		QtyBase:    1,
		RecordedBy: suite.userID,
	})

	var notFound *common.NotFoundError
	assert.ErrorAs(suite.T(), err, &notFound)
}

func (suite *StockLedgerTestSuite) TestApply_UnknownTypeRejected() {
	_, err := suite.ledger.Apply(suite.ctx, suite.hotelID, "transfer", LedgerEntry{
		ItemID:     suite.itemID,
		QtyBase:    1,
		RecordedBy: suite.userID,
	})

	var validationErr *common.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
}
