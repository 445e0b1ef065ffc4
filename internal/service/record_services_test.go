package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstream/docstream-api/internal/dto"
	"github.com/docstream/docstream-api/internal/models"
	appErrors "github.com/docstream/docstream-api/pkg/errors"
)

const (
	ownerStaff = "0b7f3c52-8d0e-4a6e-9d1a-3f4c5b6a7d01"
	otherStaff = "0b7f3c52-8d0e-4a6e-9d1a-3f4c5b6a7d02"
)

var (
	ownerClaims = &models.JWTClaims{UserID: "user-owner", StaffRef: ownerStaff}
	otherClaims = &models.JWTClaims{UserID: "user-other", StaffRef: otherStaff}
	adminClaims = &models.JWTClaims{UserID: "user-admin", IsAdmin: true}
)

type memItemRepo struct {
	items     map[string]*models.ItemRequest
	createErr error
}

func (m *memItemRepo) List(ctx context.Context, filter models.RecordFilter) ([]models.ItemRequest, int, error) {
	var out []models.ItemRequest
	for _, item := range m.items {
		if filter.CreatedBy == "" || item.CreatedBy == filter.CreatedBy {
			out = append(out, *item)
		}
	}
	return out, len(out), nil
}

func (m *memItemRepo) FindByID(ctx context.Context, id string) (*models.ItemRequest, error) {
	if item, ok := m.items[id]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (m *memItemRepo) Create(ctx context.Context, item *models.ItemRequest) error {
	if m.createErr != nil {
		return m.createErr
	}
	item.ID = fmt.Sprintf("item-%d", len(m.items)+1)
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *memItemRepo) Update(ctx context.Context, item *models.ItemRequest) error {
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *memItemRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

func newItemService() (*ItemRequestService, *memItemRepo) {
	repo := &memItemRepo{items: map[string]*models.ItemRequest{}}
	return NewItemRequestService(repo, nil, nil), repo
}

func TestItemRequestCreateForcesOwner(t *testing.T) {
	svc, _ := newItemService()

	item, err := svc.Create(context.Background(), ownerClaims, dto.ItemRequestPayload{
		Items:     types.JSONText(`[{"name":"stapler","qty":2}]`),
		CreatedBy: otherStaff,
	})
	require.NoError(t, err)
	assert.Equal(t, ownerStaff, item.CreatedBy)

	fetched, err := svc.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"stapler","qty":2}]`, string(fetched.Items))
}

func TestItemRequestCreateByAdmin(t *testing.T) {
	svc, _ := newItemService()

	item, err := svc.Create(context.Background(), adminClaims, dto.ItemRequestPayload{Items: types.JSONText(`{}`), CreatedBy: otherStaff})
	require.NoError(t, err)
	assert.Equal(t, otherStaff, item.CreatedBy)

	_, err = svc.Create(context.Background(), adminClaims, dto.ItemRequestPayload{Items: types.JSONText(`{}`)})
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "created_by", appErr.Details[0].Field)

	_, err = svc.Create(context.Background(), &models.JWTClaims{UserID: "orphan"}, dto.ItemRequestPayload{Items: types.JSONText(`{}`)})
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestItemRequestRejectsNullItems(t *testing.T) {
	svc, _ := newItemService()

	_, err := svc.Create(context.Background(), ownerClaims, dto.ItemRequestPayload{Items: types.JSONText(`null`)})
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "items", appErr.Details[0].Field)

	_, err = svc.Create(context.Background(), ownerClaims, dto.ItemRequestPayload{})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestItemRequestUnknownStaffMapsToValidation(t *testing.T) {
	svc, repo := newItemService()
	repo.createErr = fmt.Errorf("create item request: %w", &pq.Error{Code: "23503", Constraint: "item_requests_created_by_fkey"})

	_, err := svc.Create(context.Background(), adminClaims, dto.ItemRequestPayload{Items: types.JSONText(`{}`), CreatedBy: otherStaff})
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, []appErrors.FieldError{{Field: "created_by", Message: "Invalid pk - object does not exist."}}, appErr.Details)
}

func TestItemRequestOwnershipGuards(t *testing.T) {
	svc, _ := newItemService()
	item, err := svc.Create(context.Background(), ownerClaims, dto.ItemRequestPayload{Items: types.JSONText(`{}`)})
	require.NoError(t, err)

	patched := types.JSONText(`{"pens":3}`)
	_, err = svc.Patch(context.Background(), otherClaims, item.ID, dto.ItemRequestPatch{Items: &patched})
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
	err = svc.Delete(context.Background(), otherClaims, item.ID)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)

	other := otherStaff
	_, err = svc.Patch(context.Background(), ownerClaims, item.ID, dto.ItemRequestPatch{CreatedBy: &other})
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)

	updated, err := svc.Patch(context.Background(), ownerClaims, item.ID, dto.ItemRequestPatch{Items: &patched})
	require.NoError(t, err)
	assert.JSONEq(t, `{"pens":3}`, string(updated.Items))

	moved, err := svc.Patch(context.Background(), adminClaims, item.ID, dto.ItemRequestPatch{CreatedBy: &other})
	require.NoError(t, err)
	assert.Equal(t, otherStaff, moved.CreatedBy)

	require.NoError(t, svc.Delete(context.Background(), otherClaims, item.ID))
	_, err = svc.Get(context.Background(), item.ID)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

type memVehicleRepo struct {
	requests map[string]*models.VehicleRequest
}

func (m *memVehicleRepo) List(ctx context.Context, filter models.RecordFilter) ([]models.VehicleRequest, int, error) {
	var out []models.VehicleRequest
	for _, r := range m.requests {
		out = append(out, *r)
	}
	return out, len(out), nil
}

func (m *memVehicleRepo) FindByID(ctx context.Context, id string) (*models.VehicleRequest, error) {
	if r, ok := m.requests[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (m *memVehicleRepo) Create(ctx context.Context, request *models.VehicleRequest) error {
	request.ID = fmt.Sprintf("vehicle-%d", len(m.requests)+1)
	copied := *request
	m.requests[request.ID] = &copied
	return nil
}

func (m *memVehicleRepo) Update(ctx context.Context, request *models.VehicleRequest) error {
	copied := *request
	m.requests[request.ID] = &copied
	return nil
}

func (m *memVehicleRepo) SetApproval(ctx context.Context, id string, stage models.ApprovalStage, approved bool) (*models.VehicleRequest, error) {
	r, ok := m.requests[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	r.SetApproval(stage, approved)
	copied := *r
	return &copied, nil
}

func (m *memVehicleRepo) Delete(ctx context.Context, id string) error {
	delete(m.requests, id)
	return nil
}

func vehiclePayload(departure, ret string) dto.VehicleRequestPayload {
	dep, _ := models.ParseDate(departure)
	back, _ := models.ParseDate(ret)
	days := 2
	return dto.VehicleRequestPayload{
		Name:           "Ama",
		Division:       "Ops",
		VehicleType:    "Pickup",
		Purpose:        "Site visit",
		Destination:    "Tema",
		DepartureDate:  &dep,
		ReturnDate:     &back,
		DurationOfTrip: &days,
	}
}

func TestVehicleRequestDatesAndApproval(t *testing.T) {
	repo := &memVehicleRepo{requests: map[string]*models.VehicleRequest{}}
	svc := NewVehicleRequestService(repo, nil, nil)

	_, err := svc.Create(context.Background(), ownerClaims, vehiclePayload("2024-05-03", "2024-05-01"))
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "return_date", appErr.Details[0].Field)

	request, err := svc.Create(context.Background(), ownerClaims, vehiclePayload("2024-05-01", "2024-05-01"))
	require.NoError(t, err)
	assert.False(t, request.FullyApproved())
	assert.Equal(t, "2024-05-01", request.DepartureDate.String())

	approved := true
	for _, stage := range []models.ApprovalStage{models.ApprovalDivisionHead, models.ApprovalCorporateService, models.ApprovalLogisticsOfficer} {
		request, err = svc.Approve(context.Background(), otherClaims, request.ID, dto.ApprovalRequest{Stage: stage, Approved: &approved})
		require.NoError(t, err)
	}
	assert.True(t, request.FullyApproved())

	_, err = svc.Approve(context.Background(), otherClaims, request.ID, dto.ApprovalRequest{Stage: "finance", Approved: &approved})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	later, _ := models.ParseDate("2024-04-01")
	_, err = svc.Patch(context.Background(), ownerClaims, request.ID, dto.VehicleRequestPatch{ReturnDate: &later})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

type memFacilityRepo struct {
	facilities map[string]*models.Facility
}

func (m *memFacilityRepo) List(ctx context.Context, filter models.FacilityFilter) ([]models.Facility, int, error) {
	return nil, 0, nil
}

func (m *memFacilityRepo) FindByID(ctx context.Context, id string) (*models.Facility, error) {
	if f, ok := m.facilities[id]; ok {
		return f, nil
	}
	return nil, sql.ErrNoRows
}

func (m *memFacilityRepo) Create(ctx context.Context, facility *models.Facility) error {
	facility.ID = "facility-1"
	m.facilities[facility.ID] = facility
	return nil
}

func (m *memFacilityRepo) Update(ctx context.Context, facility *models.Facility) error {
	m.facilities[facility.ID] = facility
	return nil
}

func (m *memFacilityRepo) Delete(ctx context.Context, id string) error {
	delete(m.facilities, id)
	return nil
}

func TestFacilityServiceAdminOnlyWrites(t *testing.T) {
	svc := NewFacilityService(&memFacilityRepo{facilities: map[string]*models.Facility{}}, nil, nil)
	payload := dto.FacilityPayload{Name: "Depot", Address: "1 Harbour Rd", SerialNo: "FAC-01"}

	_, err := svc.Create(context.Background(), ownerClaims, payload)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)

	facility, err := svc.Create(context.Background(), adminClaims, payload)
	require.NoError(t, err)
	require.NotNil(t, facility.TakeOver)
	assert.Equal(t, models.DefaultTakeOver, *facility.TakeOver)

	fetched, err := svc.Get(context.Background(), facility.ID)
	require.NoError(t, err)
	assert.Equal(t, "FAC-01", fetched.SerialNo)
}

type stubChecklistRepo struct {
	created *models.InventoryChecklist
}

func (s *stubChecklistRepo) List(ctx context.Context, filter models.RecordFilter) ([]models.InventoryChecklist, int, error) {
	return nil, 0, nil
}

func (s *stubChecklistRepo) FindByID(ctx context.Context, id string) (*models.InventoryChecklist, error) {
	if s.created != nil && s.created.ID == id {
		return s.created, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubChecklistRepo) Create(ctx context.Context, checklist *models.InventoryChecklist) error {
	checklist.ID = "checklist-1"
	s.created = checklist
	return nil
}

func (s *stubChecklistRepo) Update(ctx context.Context, checklist *models.InventoryChecklist) error {
	return nil
}

func (s *stubChecklistRepo) Delete(ctx context.Context, id string) error { return nil }

func TestInventoryChecklistRejectsNegativeReadings(t *testing.T) {
	repo := &stubChecklistRepo{}
	svc := NewInventoryChecklistService(repo, nil, nil)
	zero, negative, price := 0, -5, 12.5

	_, err := svc.Create(context.Background(), ownerClaims, dto.InventoryChecklistPayload{
		RetailOutlet: "Osu", RetailOutletAddress: "Oxford St", PMSOpening: &negative, ProductReceived: &zero, PriceRange: &price, PumpDispensingLevel: &zero,
	})
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "pms_opening", appErr.Details[0].Field)

	checklist, err := svc.Create(context.Background(), ownerClaims, dto.InventoryChecklistPayload{
		RetailOutlet: "Osu", RetailOutletAddress: "Oxford St", PMSOpening: &zero, ProductReceived: &zero, PriceRange: &price, PumpDispensingLevel: &zero,
	})
	require.NoError(t, err)
	assert.Equal(t, ownerStaff, checklist.CreatedBy)
	assert.Equal(t, 12.5, checklist.PriceRange)
}

type stubActivityRepo struct {
	entries map[string]*models.ActivityLog
}

func (s *stubActivityRepo) List(ctx context.Context, filter models.RecordFilter) ([]models.ActivityLog, int, error) {
	var out []models.ActivityLog
	for _, e := range s.entries {
		if filter.CreatedBy == "" || e.CreatedBy == filter.CreatedBy {
			out = append(out, *e)
		}
	}
	return out, len(out), nil
}

func (s *stubActivityRepo) FindByID(ctx context.Context, id string) (*models.ActivityLog, error) {
	if e, ok := s.entries[id]; ok {
		return e, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubActivityRepo) Create(ctx context.Context, log *models.ActivityLog) error {
	log.ID = fmt.Sprintf("log-%d", len(s.entries)+1)
	s.entries[log.ID] = log
	return nil
}

func (s *stubActivityRepo) Update(ctx context.Context, log *models.ActivityLog) error { return nil }

func (s *stubActivityRepo) Delete(ctx context.Context, id string) error {
	delete(s.entries, id)
	return nil
}

func TestActivityLogListByCreator(t *testing.T) {
	svc := NewActivityLogService(&stubActivityRepo{entries: map[string]*models.ActivityLog{}}, nil, nil)

	_, err := svc.Create(context.Background(), ownerClaims, dto.ActivityLogPayload{Activity: "Opened depot"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), otherClaims, dto.ActivityLogPayload{Activity: "Closed depot"})
	require.NoError(t, err)

	logs, pagination, err := svc.List(context.Background(), models.RecordFilter{CreatedBy: ownerStaff})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Opened depot", logs[0].Activity)
	assert.Equal(t, 1, pagination.TotalCount)
	assert.Equal(t, models.DefaultPageSize, pagination.PageSize)
}
