package yaml

import (
	"testing"

	"github.com/zoobzio/cadastro"
)

func TestContentType(t *testing.T) {
	if got := New().ContentType(); got != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", got, "application/yaml")
	}
}

func TestRegistrationRoundTrip(t *testing.T) {
	c := New()
	original := cadastro.Registration{
		Name:     "Maria Silva",
		CPF:      "529.982.247-25",
		Email:    "maria@example.com",
		Phone:    "(11) 98765-4321",
		CEP:      "01310-100",
		Campaign: "estoque",
	}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored cadastro.Registration
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	var reg cadastro.Registration
	if err := New().Unmarshal([]byte("cpf: [unterminated"), &reg); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
