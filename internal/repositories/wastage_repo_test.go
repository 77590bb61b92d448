package repositories

import (
	"context"
	"testing"

	"hotelops/internal/common"
	"hotelops/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type WastageRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    WastageRepository
	hotelID uuid.UUID
	ctx     context.Context
}

func (suite *WastageRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewWastageRepo(mock)
	suite.hotelID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *WastageRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestWastageRepoTestSuite(t *testing.T) {
	suite.Run(t, new(WastageRepoTestSuite))
}

func (suite *WastageRepoTestSuite) approvedWastage() *models.Wastage {
	approver := uuid.New()
	return &models.Wastage{
		ID:         uuid.New(),
		HotelID:    suite.hotelID,
		ItemID:     uuid.New(),
		Qty:        3,
		Unit:       "piece",
		Reason:     "breakage during transport",
		Status:     models.WastageStatusApproved,
		RecordedBy: uuid.New(),
		ApprovedBy: &approver,
	}
}

func (suite *WastageRepoTestSuite) TestTransition_GuardsCurrentStatus() {
	wastage := suite.approvedWastage()

	suite.mock.ExpectExec(`UPDATE wastages`).
		WithArgs(wastage.Status, wastage.ApprovedBy, wastage.RejectionReason,
			wastage.HotelID, wastage.ID, models.WastageStatusPendingApproval).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Transition(suite.ctx, wastage, models.WastageStatusPendingApproval)
	assert.NoError(suite.T(), err)
}

func (suite *WastageRepoTestSuite) TestTransition_ConcurrentApprovalLoses() {
	// Another approver won the race: the guarded update matches no rows.
	wastage := suite.approvedWastage()

	suite.mock.ExpectExec(`UPDATE wastages`).
		WithArgs(wastage.Status, wastage.ApprovedBy, wastage.RejectionReason,
			wastage.HotelID, wastage.ID, models.WastageStatusPendingApproval).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.Transition(suite.ctx, wastage, models.WastageStatusPendingApproval)

	var validationErr *common.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
}

func (suite *WastageRepoTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mock.ExpectQuery(`SELECT (.+) FROM wastages`).
		WithArgs(suite.hotelID, id).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	_, err := suite.repo.GetByID(suite.ctx, suite.hotelID, id)

	var notFound *common.NotFoundError
	assert.ErrorAs(suite.T(), err, &notFound)
}
