package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
)

func TestForMode(t *testing.T) {
	for _, mode := range entity.CatalogModes() {
		t.Run(mode.String(), func(t *testing.T) {
			text, err := ForMode(mode)
			require.NoError(t, err)
			assert.NotEmpty(t, text)
		})
	}

	t.Run("custom edit has no template", func(t *testing.T) {
		_, err := ForMode(entity.ModeCustomEdit)
		assert.ErrorIs(t, err, errs.ErrInvalidMode)
	})
}

func TestValidateInstruction(t *testing.T) {
	tests := []struct {
		name        string
		instruction string
		want        string
		wantErr     bool
	}{
		{name: "two characters", instruction: "ab", wantErr: true},
		{name: "three characters", instruction: "abc", want: "abc"},
		{name: "padded short text", instruction: "   ab   ", wantErr: true},
		{name: "trimmed result", instruction: "  add a sunset  ", want: "add a sunset"},
		{name: "exactly 500", instruction: strings.Repeat("a", 500), want: strings.Repeat("a", 500)},
		{name: "501 characters", instruction: strings.Repeat("a", 501), wantErr: true},
		{name: "multibyte counted as characters", instruction: strings.Repeat("é", 500), want: strings.Repeat("é", 500)},
		{name: "empty", instruction: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateInstruction(tt.instruction)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidInstruction)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
