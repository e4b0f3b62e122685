package errors

import (
	"testing"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"typical", 300, 300, false},
		{"minimum", MinDimension, MinDimension, false},
		{"wide", 1920, 200, false},
		{"maximum", MaxDimension, MaxDimension, false},

		{"zero", 0, 0, true},
		{"negative", -300, 300, true},
		{"narrow", MinDimension - 1, 300, true},
		{"short", 300, MinDimension - 1, true},
		{"too wide", MaxDimension + 1, 300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%d, %d) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimensions) {
				t.Errorf("ValidateDimensions(%d, %d) code = %v, want %v", tt.width, tt.height, GetCode(err), ErrCodeInvalidDimensions)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "basic.png", false},
		{"relative dir", "out/art.png", false},
		{"absolute", "/tmp/art.png", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "art\x00.png", true},
		{"newline", "art\n.png", true},
		{"directory", "out/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"#5c3ba8", false},
		{"#FFFFFF", false},
		{"#000000", false},

		{"", true},
		{"5c3ba8", true},
		{"#5c3", true},
		{"#5c3ba8ff", true},
		{"#gggggg", true},
	}

	for _, tt := range tests {
		err := ValidateHexColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
