package cli

import "testing"

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{59, "$59"},
		{1000, "$1,000"},
		{1639, "$1,639"},
		{1234567, "$1,234,567"},
		{99.6, "$100"},
		{-250, "-$250"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSetLocale(t *testing.T) {
	defer func() { _ = SetLocale("") }()

	if err := SetLocale("de-DE"); err != nil {
		t.Fatalf("SetLocale: %v", err)
	}
	if got := FormatCurrency(1234567); got != "$1.234.567" {
		t.Fatalf("de-DE FormatCurrency(1234567) = %q, want $1.234.567", got)
	}
	if err := SetLocale("not a locale!"); err == nil {
		t.Fatal("SetLocale accepted an invalid tag")
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(61); got != "61%" {
		t.Fatalf("FormatPercent(61) = %q", got)
	}
}

func TestSetCurrency(t *testing.T) {
	defer func() { _ = SetCurrency("") }()

	if err := SetCurrency("eur"); err != nil {
		t.Fatalf("SetCurrency: %v", err)
	}
	if got := CurrencySymbol(); got != "€" {
		t.Fatalf("CurrencySymbol() = %q, want €", got)
	}
	if got := FormatCurrency(1639); got != "€1,639" {
		t.Fatalf("EUR FormatCurrency(1639) = %q", got)
	}
	if got := FormatCurrency(-5); got != "-€5" {
		t.Fatalf("EUR FormatCurrency(-5) = %q", got)
	}

	if err := SetCurrency("XYZ"); err == nil {
		t.Fatal("SetCurrency accepted an unknown code")
	}
	if got := CurrencySymbol(); got != "€" {
		t.Fatal("failed SetCurrency changed the active currency")
	}

	if err := SetCurrency(""); err != nil {
		t.Fatal(err)
	}
	if got := FormatCurrency(1000); got != "$1,000" {
		t.Fatalf("reset FormatCurrency(1000) = %q", got)
	}
}
