package integration

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/zoobzio/cadastro"
	"github.com/zoobzio/cadastro/bson"
	"github.com/zoobzio/cadastro/json"
	"github.com/zoobzio/cadastro/messages"
	"github.com/zoobzio/cadastro/msgpack"
	cadastrotest "github.com/zoobzio/cadastro/testing"
	"github.com/zoobzio/cadastro/xml"
	"github.com/zoobzio/cadastro/yaml"
)

func codecs() map[string]cadastro.Codec {
	return map[string]cadastro.Codec{
		"json":    json.New(),
		"yaml":    yaml.New(),
		"msgpack": msgpack.New(),
		"bson":    bson.New(),
		"xml":     xml.New(),
	}
}

func TestRegistration_Lifecycle(t *testing.T) {
	for name, c := range codecs() {
		t.Run(name, func(t *testing.T) {
			testLifecycle(t, c)
		})
	}
}

func testLifecycle(t *testing.T, c cadastro.Codec) {
	t.Helper()
	ctx := context.Background()

	proc, err := cadastro.NewRegistrationProcessor(c, cadastrotest.Pepper())
	if err != nil {
		t.Fatalf("NewRegistrationProcessor error: %v", err)
	}

	sample := cadastrotest.SampleRegistration()
	body, err := c.Marshal(&sample)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	reg, err := proc.Receive(ctx, body)
	if err != nil {
		t.Fatalf("Receive error: %v", err)
	}
	if reg.CPF != "529.982.247-25" || reg.Phone != "(11) 98765-4321" || reg.CEP != "01310-100" || reg.Email != "maria@example.com" {
		t.Errorf("Receive did not format fields: %+v", reg)
	}

	stored, err := proc.Store(ctx, reg)
	if err != nil {
		t.Fatalf("Store error: %v", err)
	}
	var row cadastro.Registration
	if err := c.Unmarshal(stored, &row); err != nil {
		t.Fatalf("Unmarshal stored error: %v", err)
	}
	mac := hmac.New(sha256.New, cadastrotest.Pepper())
	mac.Write([]byte("52998224725"))
	if row.CPF != hex.EncodeToString(mac.Sum(nil)) {
		t.Errorf("stored CPF = %q, want keyed fingerprint of its digits", row.CPF)
	}
	if row.Phone != reg.Phone {
		t.Errorf("stored Phone = %q, want %q", row.Phone, reg.Phone)
	}

	sent, err := proc.Send(ctx, reg)
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}
	var out cadastro.Registration
	if err := c.Unmarshal(sent, &out); err != nil {
		t.Fatalf("Unmarshal sent error: %v", err)
	}
	want := cadastro.Registration{
		Name:     "M**** S****",
		CPF:      "***.982.247-**",
		Email:    "m***@example.com",
		Phone:    "(11) *****-4321",
		CEP:      "01310-***",
		Campaign: "oncologico",
	}
	if out != want {
		t.Errorf("Send = %+v, want %+v", out, want)
	}

	if reg.CPF != "529.982.247-25" {
		t.Error("Store/Send must not mutate the original")
	}
}

func TestRegistration_InvalidSubmission(t *testing.T) {
	ctx := context.Background()
	c := json.New()

	proc, err := cadastro.NewRegistrationProcessor(c, cadastrotest.Pepper())
	if err != nil {
		t.Fatalf("NewRegistrationProcessor error: %v", err)
	}

	bad := cadastrotest.InvalidRegistration()
	body, _ := c.Marshal(&bad)

	reg, err := proc.Receive(ctx, body)
	var verr *cadastro.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Receive error = %v, want *ValidationError", err)
	}
	if reg == nil || reg.Phone != "(11) 3333-4444" {
		t.Errorf("Receive should return the formatted form, got %+v", reg)
	}

	got := messages.Default().DescribeAll("pt-BR", err, true)
	want := []string{"CPF inválido.", "E-mail inválido.", "Telefone inválido.", "CEP inválido."}
	if len(got) != len(want) {
		t.Fatalf("DescribeAll = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DescribeAll[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
