package draft

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFormatNumber(t *testing.T) {
	linear := NewRegistry().Dim(DressDimension)
	angular := NewRegistry().Dim(DressAngularDimension)

	tests := []struct {
		name  string
		value float64
		style DimStyle
		want  string
	}{
		{"rounded to decimals", 12.3456, linear, "12.35"},
		{"integer", 30, linear, "30"},
		{"degrees only", 30, angular, "30°"},
		{"half degree", 30.5, angular, "30°30'"},
		{"quarter degree", 30.25, angular, "30°15'"},
		{"zero minutes dropped", 10 + 1.0/3600, angular, "10°1\""},
		{"carry to degrees", 44.99999999, angular, "45°"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatNumber(tt.value, tt.style)
			if err != nil {
				t.Fatalf("FormatNumber(%v) error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatNumberLiteralPercent(t *testing.T) {
	style := DimStyle{NumberFormat: "%g%%", NumberArguments: "d", Language: language.English}
	got, err := FormatNumber(50, style)
	if err != nil {
		t.Fatal(err)
	}
	if got != "50%" {
		t.Errorf("got %q, want %q", got, "50%")
	}
}

func TestFormatNumberErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   string
	}{
		{"unbalanced close", "%g)", "d"},
		{"unbalanced open", "(%g", "d"},
		{"unknown argument", "%g", "x"},
		{"missing argument", "%g %g", "d"},
		{"unused argument", "%g", "dd"},
		{"incomplete verb", "%", "d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := DimStyle{NumberFormat: tt.format, NumberArguments: tt.args, Language: language.English}
			if got, err := FormatNumber(1, style); err == nil {
				t.Errorf("FormatNumber with %q/%q = %q, want error", tt.format, tt.args, got)
			}
		})
	}
}
