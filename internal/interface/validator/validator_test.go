package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/timeserver/pkg/apperror"
)

type zonesQuery struct {
	Prefix  string `validate:"max=64,zoneprefix"`
	PerPage int    `validate:"gte=0,lte=100"`
}

func TestCustomValidator_Validate_Valid(t *testing.T) {
	cv := NewCustomValidator()

	for _, prefix := range []string{"", "Asia/", "America/Argentina/Buenos_Aires", "Etc/GMT+5", "Etc/GMT-14"} {
		assert.NoError(t, cv.Validate(zonesQuery{Prefix: prefix}), prefix)
	}
}

func TestCustomValidator_Validate_InvalidPrefix(t *testing.T) {
	cv := NewCustomValidator()

	err := cv.Validate(zonesQuery{Prefix: "../etc", PerPage: 10})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeValidationError, appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "prefix", appErr.Details[0].Field)
}

func TestCustomValidator_Validate_ReportsSnakeCaseFields(t *testing.T) {
	cv := NewCustomValidator()

	err := cv.Validate(zonesQuery{PerPage: 101})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "per_page", appErr.Details[0].Field)
	assert.Equal(t, "must be less than or equal to 100", appErr.Details[0].Message)
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "per_page", toSnakeCase("PerPage"))
	assert.Equal(t, "prefix", toSnakeCase("Prefix"))
}
