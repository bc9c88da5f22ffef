package assets

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain name", "default", false},
		{"hyphenated", "night-sheet", false},
		{"underscored", "teensy_v2", false},
		{"unicode", "grimoire-été", false},
		{"empty", "", true},
		{"forward slash", "styles/default", true},
		{"backslash", `styles\default`, true},
		{"parent traversal", "../etc", true},
		{"extension", "default.css", true},
		{"single dot", ".", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAssetName) {
					t.Errorf("ValidateAssetName(%q) = %v, want ErrInvalidAssetName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestValidateAssetName_Limits(t *testing.T) {
	t.Parallel()

	if err := ValidateAssetName(strings.Repeat("a", maxAssetNameLen)); err != nil {
		t.Errorf("name at the limit: unexpected error %v", err)
	}
	for name, input := range map[string]string{
		"too long": strings.Repeat("a", maxAssetNameLen+1),
		"newline":  "default\n",
		"nul":      "def\x00ault",
	} {
		if err := ValidateAssetName(input); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("%s: ValidateAssetName() = %v, want ErrInvalidAssetName", name, err)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want bool
	}{
		{fmt.Errorf("%w: %q", ErrStyleNotFound, "x"), true},
		{fmt.Errorf("%w: %q", ErrTemplateSetNotFound, "x"), true},
		{ErrInvalidAssetName, false},
		{ErrAssetRead, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsNotFound(tt.err); got != tt.want {
			t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
