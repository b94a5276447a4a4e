package config

import (
	"reflect"
	"testing"
)

func TestSplitCSV(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"https://a.com", []string{"https://a.com"}},
		{"https://a.com, https://b.com ,", []string{"https://a.com", "https://b.com"}},
		{" , ,", nil},
	}

	for _, tc := range cases {
		if got := splitCSV(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitCSV(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLoadCurrencyAndCORSDefaults(t *testing.T) {
	t.Setenv("CURRENCY", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()

	if cfg.Currency != "BRL" {
		t.Errorf("moeda default deveria ser BRL, got %q", cfg.Currency)
	}
	if len(cfg.CORSAllowedOrigins) != 0 {
		t.Errorf("CORS default deveria ser vazio, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadCurrencyFromEnv(t *testing.T) {
	t.Setenv("CURRENCY", "ARS")
	t.Setenv("CORS_ORIGINS", "https://a.com,https://b.com")

	cfg := Load()

	if cfg.Currency != "ARS" {
		t.Errorf("CURRENCY do ambiente deveria prevalecer, got %q", cfg.Currency)
	}
	if want := []string{"https://a.com", "https://b.com"}; !reflect.DeepEqual(cfg.CORSAllowedOrigins, want) {
		t.Errorf("CORS_ORIGINS = %v, want %v", cfg.CORSAllowedOrigins, want)
	}
}
