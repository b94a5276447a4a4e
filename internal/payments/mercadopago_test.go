package payments

import "testing"

func TestNewRequiresAccessToken(t *testing.T) {
	if _, err := New("", "BRL"); err == nil {
		t.Fatal("esperava erro sem access token")
	}
}

func TestNewCurrencyFromConfig(t *testing.T) {
	c, err := New("TEST-token", "ARS")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.currency != "ARS" {
		t.Errorf("moeda deveria vir do config, got %q", c.currency)
	}
}

func TestNewCurrencyDefaultsToBRL(t *testing.T) {
	c, err := New("TEST-token", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.currency != "BRL" {
		t.Errorf("moeda vazia deveria cair em BRL, got %q", c.currency)
	}
}
