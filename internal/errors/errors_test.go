package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "with cause",
			err:  NewParsingError("bad sheet", stderrors.New("boom")),
			want: "[PARSING] bad sheet: boom",
		},
		{
			name: "without cause",
			err:  NewValidationError("bad input"),
			want: "[VALIDATION] bad input",
		},
		{
			name: "not found",
			err:  NewNotFoundError("workbook"),
			want: "[NOT_FOUND] workbook not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("io failure")
	err := NewStorageError("write failed", cause)

	assert.True(t, stderrors.Is(err, cause))

	var appErr *AppError
	require.True(t, stderrors.As(fmt.Errorf("wrapped: %w", err), &appErr))
	assert.Equal(t, ErrTypeStorage, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewConfigError("bad config", nil).
		WithContext("file", "config.yaml").
		WithContext("line", 3)

	assert.Equal(t, "config.yaml", err.Context["file"])
	assert.Equal(t, 3, err.Context["line"])
}

func TestIsType(t *testing.T) {
	err := NewNotFoundError("sheet")

	assert.True(t, IsType(err, ErrTypeNotFound))
	assert.False(t, IsType(err, ErrTypeParsing))
	assert.True(t, IsType(fmt.Errorf("wrapped: %w", err), ErrTypeNotFound))
	assert.False(t, IsType(stderrors.New("plain"), ErrTypeNotFound))
}
