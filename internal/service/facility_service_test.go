package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstream/docstream-api/internal/dto"
	"github.com/docstream/docstream-api/internal/models"
	appErrors "github.com/docstream/docstream-api/pkg/errors"
)

func decodeFacilityPayload(t *testing.T, body string) dto.FacilityPayload {
	t.Helper()
	var payload dto.FacilityPayload
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return payload
}

func decodeFacilityPatch(t *testing.T, body string) dto.FacilityPatch {
	t.Helper()
	var patch dto.FacilityPatch
	require.NoError(t, json.Unmarshal([]byte(body), &patch))
	return patch
}

func TestFacilityTakeOverNullSemantics(t *testing.T) {
	ctx := context.Background()
	svc := NewFacilityService(&memFacilityRepo{facilities: map[string]*models.Facility{}}, nil, nil)

	created, err := svc.Create(ctx, adminClaims, decodeFacilityPayload(t, `{"name":"Depot","address":"1 Harbour Rd","serial_no":"FAC-01","take_over":null}`))
	require.NoError(t, err)
	assert.Nil(t, created.TakeOver)

	updated, err := svc.Update(ctx, adminClaims, created.ID, decodeFacilityPayload(t, `{"name":"Depot","address":"1 Harbour Rd","serial_no":"FAC-01","take_over":"Rina"}`))
	require.NoError(t, err)
	require.NotNil(t, updated.TakeOver)
	assert.Equal(t, "Rina", *updated.TakeOver)

	kept, err := svc.Patch(ctx, adminClaims, created.ID, decodeFacilityPatch(t, `{"name":"Depot North"}`))
	require.NoError(t, err)
	require.NotNil(t, kept.TakeOver)
	assert.Equal(t, "Rina", *kept.TakeOver)

	cleared, err := svc.Patch(ctx, adminClaims, created.ID, decodeFacilityPatch(t, `{"take_over":null}`))
	require.NoError(t, err)
	assert.Nil(t, cleared.TakeOver)
	assert.Equal(t, "Depot North", cleared.Name)

	_, err = svc.Update(ctx, adminClaims, created.ID, decodeFacilityPayload(t, `{"name":"Depot","address":"1 Harbour Rd","serial_no":"FAC-01","take_over":"Budi"}`))
	require.NoError(t, err)
	replaced, err := svc.Update(ctx, adminClaims, created.ID, decodeFacilityPayload(t, `{"name":"Depot","address":"1 Harbour Rd","serial_no":"FAC-01","take_over":null}`))
	require.NoError(t, err)
	assert.Nil(t, replaced.TakeOver)
}

func TestFacilityTakeOverDefaultsOnlyOnCreate(t *testing.T) {
	svc := NewFacilityService(&memFacilityRepo{facilities: map[string]*models.Facility{}}, nil, nil)

	created, err := svc.Create(context.Background(), adminClaims, decodeFacilityPayload(t, `{"name":"Depot","address":"1 Harbour Rd","serial_no":"FAC-01"}`))
	require.NoError(t, err)
	require.NotNil(t, created.TakeOver)
	assert.Equal(t, models.DefaultTakeOver, *created.TakeOver)
}

func TestFacilityTakeOverLength(t *testing.T) {
	svc := NewFacilityService(&memFacilityRepo{facilities: map[string]*models.Facility{}}, nil, nil)
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	body := `{"name":"Depot","address":"1 Harbour Rd","serial_no":"FAC-01","take_over":"` + string(long) + `"}`

	_, err := svc.Create(context.Background(), adminClaims, decodeFacilityPayload(t, body))
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "take_over", appErr.Details[0].Field)
}

func TestRequiredTextRejectsWhitespace(t *testing.T) {
	ctx := context.Background()
	svc := NewFacilityService(&memFacilityRepo{facilities: map[string]*models.Facility{}}, nil, nil)

	_, err := svc.Create(ctx, adminClaims, dto.FacilityPayload{Name: "   ", Address: "1 Harbour Rd", SerialNo: "FAC-01"})
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, appErrors.FieldError{Field: "name", Message: "This field may not be blank."}, appErr.Details[0])

	created, err := svc.Create(ctx, adminClaims, dto.FacilityPayload{Name: "Depot", Address: "1 Harbour Rd", SerialNo: "FAC-01"})
	require.NoError(t, err)

	blank := "\t "
	_, err = svc.Patch(ctx, adminClaims, created.ID, dto.FacilityPatch{SerialNo: &blank})
	appErr = appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "serial_no", appErr.Details[0].Field)
}
