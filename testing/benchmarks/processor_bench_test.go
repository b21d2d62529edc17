package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/cadastro"
	"github.com/zoobzio/cadastro/json"
	cadastrotest "github.com/zoobzio/cadastro/testing"
)

func BenchmarkFormatCPF(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = cadastro.FormatCPF("52998224725")
	}
}

func BenchmarkFormatPhone(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = cadastro.FormatPhone("(11) 98765-4321")
	}
}

func BenchmarkValidCPF(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = cadastro.ValidCPF("529.982.247-25")
	}
}

func newProcessor(c cadastro.Codec) *cadastro.Processor[cadastro.Registration] {
	proc, _ := cadastro.NewProcessor[cadastro.Registration](c)
	return proc.SetHasher(cadastro.HashHMAC, cadastro.HMACHasher(cadastrotest.Pepper()))
}

func BenchmarkProcessor_Format(b *testing.B) {
	proc := newProcessor(json.New())
	reg := cadastrotest.SampleRegistration()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Format(context.Background(), &reg)
	}
}

func BenchmarkProcessor_Receive(b *testing.B) {
	c := json.New()
	proc := newProcessor(c)
	reg := cadastrotest.SampleRegistration()
	body, _ := c.Marshal(&reg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Receive(context.Background(), body)
	}
}

func BenchmarkProcessor_Send(b *testing.B) {
	proc := newProcessor(json.New())
	reg := cadastrotest.SampleRegistration()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Send(context.Background(), &reg)
	}
}

func BenchmarkProcessor_Store(b *testing.B) {
	proc := newProcessor(json.New())
	reg := cadastrotest.SampleRegistration()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Store(context.Background(), &reg)
	}
}

func BenchmarkHasher_HMAC(b *testing.B) {
	h := cadastro.HMACHasher(cadastrotest.Pepper())
	data := []byte("52998224725")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Hash(data)
	}
}
