package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
	Mode      string `json:"mode" validate:"omitempty,oneof=fast slow"`
}

func TestValidator_SessionID(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		req     testRequest
		wantErr bool
	}{
		{"valid uuid", testRequest{SessionID: "6f1c1d7e-3f5a-4d5e-9c2a-0b1e2f3a4b5c"}, false},
		{"valid with mode", testRequest{SessionID: "6f1c1d7e-3f5a-4d5e-9c2a-0b1e2f3a4b5c", Mode: "fast"}, false},
		{"missing session", testRequest{}, true},
		{"not a uuid", testRequest{SessionID: "abc"}, true},
		{"bad mode", testRequest{SessionID: "6f1c1d7e-3f5a-4d5e-9c2a-0b1e2f3a4b5c", Mode: "warp"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	t.Run("uses json field names", func(t *testing.T) {
		err := v.ValidateStruct(testRequest{SessionID: "abc", Mode: "warp"})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "Must be a valid UUID", fields["session_id"])
		assert.Equal(t, "Must be one of: fast slow", fields["mode"])
	})

	t.Run("required", func(t *testing.T) {
		fields := FormatValidationError(v.ValidateStruct(testRequest{}))
		assert.Equal(t, "This field is required", fields["session_id"])
	})

	t.Run("non validation error", func(t *testing.T) {
		fields := FormatValidationError(errors.New("boom"))
		assert.Equal(t, "Invalid request format", fields["error"])
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}

func TestValidateVar(t *testing.T) {
	v := GetValidator()
	assert.NoError(t, v.ValidateVar("6f1c1d7e-3f5a-4d5e-9c2a-0b1e2f3a4b5c", "uuid"))
	assert.Error(t, v.ValidateVar("nope", "uuid"))
}
