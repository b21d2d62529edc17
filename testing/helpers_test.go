package testing

import (
	"testing"

	"github.com/zoobzio/cadastro"
)

func TestValidCPFs(t *testing.T) {
	for _, cpf := range ValidCPFs() {
		if !cadastro.ValidCPF(cpf) {
			t.Errorf("ValidCPF(%q) = false, fixture should be valid", cpf)
		}
	}
}

func TestCPF(t *testing.T) {
	if got := CPF(t, "529.982.247"); got != "52998224725" {
		t.Errorf("CPF(529.982.247) = %q, want %q", got, "52998224725")
	}
	if got := CPF(t, "123456789"); !cadastro.ValidCPF(got) {
		t.Errorf("CPF(123456789) = %q, not valid", got)
	}
}

func TestSampleRegistration_Clone(t *testing.T) {
	original := SampleRegistration()
	cloned := original.Clone()

	if cloned != original {
		t.Error("Clone() should copy all fields")
	}
}

func TestPepper(t *testing.T) {
	if len(Pepper()) < cadastro.MinHMACKeyLen {
		t.Errorf("len(Pepper()) = %d, want at least %d", len(Pepper()), cadastro.MinHMACKeyLen)
	}
}
