package campaign

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestDefault(t *testing.T) {
	c := Default()

	keys := c.Keys()
	want := []string{"emergencial", "estoque", "oncologico"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	onc, err := c.Lookup("oncologico")
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if onc.Title != "Fundo de Tratamento Oncológico" || onc.Progress != 62 || onc.Goal != "R$ 62.000 de R$ 100.000" {
		t.Errorf("Lookup(oncologico) = %+v", onc)
	}

	if all := c.All(); all[0].Key != "estoque" || all[2].Key != "emergencial" {
		t.Errorf("All() order = %q, %q, %q", all[0].Key, all[1].Key, all[2].Key)
	}
}

func TestLookup_NotFound(t *testing.T) {
	if _, err := Default().Lookup("vacinas"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup(vacinas) error = %v, want ErrNotFound", err)
	}
}

func TestMatchTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
		ok    bool
	}{
		{"Estoque Solidário", "estoque", true},
		{"Fundo de Tratamento Oncológico", "oncologico", true},
		{"FUNDO DE TRATAMENTO ONCOLOGICO", "oncologico", true},
		{"Fundo Emergencial", "emergencial", true},
		{"Campanha do Agasalho", "", false},
	}

	for _, tt := range tests {
		got, ok := Default().MatchTitle(tt.title)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MatchTitle(%q) = %q, %v, want %q, %v", tt.title, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty key", "campaigns:\n  - key: ''\n", ErrEmptyKey},
		{"duplicate", "campaigns:\n  - key: a\n  - key: a\n", ErrDuplicateKey},
		{"progress", "campaigns:\n  - key: a\n    progress: 101\n", ErrProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Parse([]byte("campaigns: [")); err == nil {
		t.Error("Parse(invalid yaml) should fail")
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"c.yaml": {Data: []byte("campaigns:\n  - key: vacinas\n    title: Vacinação\n    progress: 10\n")},
	}

	c, err := Load(fsys, "c.yaml")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if key, ok := c.MatchTitle("Campanha de VACINAS"); !ok || key != "vacinas" {
		t.Errorf("MatchTitle() = %q, %v, want vacinas (keyword defaults to key)", key, ok)
	}

	if _, err := Load(fsys, "missing.yaml"); err == nil {
		t.Error("Load(missing) should fail")
	}
}
