package errors

import (
	"math"
	"testing"
)

func TestValidateValue(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"max", 4095, false},
		{"middle", 2080, false},
		{"negative", -1, true},
		{"too large", 4096, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValue(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateValue(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeDomain) {
				t.Errorf("ValidateValue(%d) code = %v, want %v", tt.input, GetCode(err), ErrCodeDomain)
			}
		})
	}
}

func TestValidateLength(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"positive", 8.5, false},
		{"tiny", 1e-6, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLength("width", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLength(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeConfiguration) {
				t.Errorf("ValidateLength(%v) code = %v, want %v", tt.input, GetCode(err), ErrCodeConfiguration)
			}
		})
	}
}

func TestValidateOffset(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 0.6, false},
		{"negative", -0.1, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOffset("margin", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOffset(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCount(t *testing.T) {
	if err := ValidateCount("pages", 0); err != nil {
		t.Errorf("ValidateCount(0) = %v, want nil", err)
	}
	if err := ValidateCount("pages", -1); err == nil {
		t.Error("ValidateCount(-1) = nil, want error")
	}
}
