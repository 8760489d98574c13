package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Token   string `validate:"required"`
	Workers int    `validate:"min=1"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      interface{}
		wantErr string
	}{
		{
			name: "valid",
			in:   sample{Token: "t", Workers: 1},
		},
		{
			name:    "missing token",
			in:      sample{Workers: 1},
			wantErr: "Field: sample.Token, Tag: required",
		},
		{
			name:    "not a struct",
			in:      42,
			wantErr: "validation failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
