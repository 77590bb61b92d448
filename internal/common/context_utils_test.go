package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestValidateUUID_Valid(t *testing.T) {
	want := uuid.New()

	got, err := ValidateUUID(want.String(), "id")

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestValidateUUID_InvalidInputsAreValidationErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "not-a-uuid", "12345"} {
		_, err := ValidateUUID(input, "id")

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr, "input %q", input)
		assert.Equal(t, "id", validationErr.Field)
	}
}

func TestValidateRequiredString_EmptyIsValidationError(t *testing.T) {
	err := ValidateRequiredString("  ", "name")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)
}

// A malformed path parameter must answer 400, not surface as a server error.
func TestSendDomainError_MalformedUUIDAnswersBadRequest(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_, err := ValidateUUID("not-a-uuid", "id")
	assert.NoError(t, SendDomainError(c, err))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}
