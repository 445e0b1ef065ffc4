package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstream/docstream-api/internal/models"
)

func TestItemRequestListFiltersByCreator(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewItemRequestRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + itemRequestColumns + " FROM item_requests WHERE created_by = $1 ORDER BY created_at DESC LIMIT 20 OFFSET 0")).
		WithArgs("staff-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "items", "created_by", "created_at", "updated_at"}).
			AddRow("ir-1", []byte(`[{"name":"paper","qty":2}]`), "staff-1", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM item_requests WHERE created_by = $1")).
		WithArgs("staff-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	items, total, err := repo.List(context.Background(), models.RecordFilter{CreatedBy: "staff-1"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, total)
	assert.JSONEq(t, `[{"name":"paper","qty":2}]`, string(items[0].Items))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRequestCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewItemRequestRepository(db)

	mock.ExpectExec("INSERT INTO item_requests").WillReturnResult(sqlmock.NewResult(1, 1))

	item := &models.ItemRequest{Items: types.JSONText(`{"pens":3}`), CreatedBy: "staff-1"}
	require.NoError(t, repo.Create(context.Background(), item))
	assert.NotEmpty(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRequestFindByIDScansDates(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewVehicleRequestRepository(db)

	now := time.Now()
	departure := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM vehicle_requests WHERE id = $1")).
		WithArgs("vr-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "division", "vehicle_type", "purpose", "destination", "departure_date", "return_date", "duration_of_trip", "division_head_approval", "corporate_service_approval", "logistics_officer_approval", "created_by", "created_at", "updated_at"}).
			AddRow("vr-1", "Ada", "Ops", "Van", "Delivery", "Abuja", departure, ret, 2, true, false, false, "staff-1", now, now))

	request, err := repo.FindByID(context.Background(), "vr-1")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", request.DepartureDate.String())
	assert.Equal(t, "2024-05-03", request.ReturnDate.String())
	assert.True(t, request.DivisionHeadApproval)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRequestSetApproval(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewVehicleRequestRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE vehicle_requests SET logistics_officer_approval = $2, updated_at = $3 WHERE id = $1 RETURNING")).
		WithArgs("vr-1", true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "division", "vehicle_type", "purpose", "destination", "departure_date", "return_date", "duration_of_trip", "division_head_approval", "corporate_service_approval", "logistics_officer_approval", "created_by", "created_at", "updated_at"}).
			AddRow("vr-1", "Ada", "Ops", "Van", "Delivery", "Abuja", now, now, 1, false, false, true, "staff-1", now, now))

	request, err := repo.SetApproval(context.Background(), "vr-1", models.ApprovalLogisticsOfficer, true)
	require.NoError(t, err)
	assert.True(t, request.LogisticsOfficerApproval)

	_, err = repo.SetApproval(context.Background(), "vr-1", "driver", true)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryChecklistUpdate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewInventoryChecklistRepository(db)

	mock.ExpectExec("UPDATE inventory_checklists SET").WillReturnResult(sqlmock.NewResult(0, 1))

	checklist := &models.InventoryChecklist{ID: "ic-1", RetailOutlet: "Outlet", ProductReceived: 40, CreatedBy: "staff-1"}
	require.NoError(t, repo.Update(context.Background(), checklist))
	assert.False(t, checklist.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityLogDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewActivityLogRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM activity_logs WHERE id = $1")).
		WithArgs("al-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "al-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFacilityListAndCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewFacilityRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + facilityColumns + " FROM facilities ORDER BY name ASC LIMIT 20 OFFSET 0")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "serial_no", "take_over"}).
			AddRow("f-1", "Depot", "1 Road", "SN-1", nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM facilities")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec("INSERT INTO facilities").WillReturnResult(sqlmock.NewResult(1, 1))

	facilities, total, err := repo.List(context.Background(), models.FacilityFilter{})
	require.NoError(t, err)
	require.Len(t, facilities, 1)
	assert.Nil(t, facilities[0].TakeOver)
	assert.Equal(t, 1, total)

	takeOver := models.DefaultTakeOver
	require.NoError(t, repo.Create(context.Background(), &models.Facility{Name: "Yard", Address: "2 Road", SerialNo: "SN-2", TakeOver: &takeOver}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
