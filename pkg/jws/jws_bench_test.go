package jws

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/TrueLayer/payouts-api-signing-examples/pkg/signer"
)

// Benchmark the full compact JWS build with a real ES512 signer
func BenchmarkSignCompact(b *testing.B) {
	key, err := ecdsa.GenerateKey(elliptic.P521(), rand.Reader)
	if err != nil {
		b.Fatalf("Failed to generate key: %v", err)
	}

	es512, err := signer.NewES512Signer(key)
	if err != nil {
		b.Fatalf("Failed to create signer: %v", err)
	}

	header := NewES512Header("bench-kid")
	payload := []byte(`{"beneficiary_name":"A. Person","amount_in_minor":1000,"currency":"GBP"}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SignCompact(header, payload, es512); err != nil {
			b.Fatalf("SignCompact failed: %v", err)
		}
	}
}

// Benchmark serialization overhead alone with a no-op signer
func BenchmarkSignCompact_SerializationOnly(b *testing.B) {
	mock := &mockSignerBench{}
	header := NewES512Header("bench-kid")
	payload := []byte(`{"beneficiary_name":"A. Person","amount_in_minor":1000,"currency":"GBP"}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SignCompact(header, payload, mock); err != nil {
			b.Fatalf("SignCompact failed: %v", err)
		}
	}
}

func BenchmarkDetach(b *testing.B) {
	mock := &mockSignerBench{}
	compact, err := SignCompact(NewES512Header("bench-kid"), []byte(`{"foo":"bar"}`), mock)
	if err != nil {
		b.Fatalf("SignCompact failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Detach(compact)
	}
}

// mockSignerBench for benchmarking without ECDSA cost
type mockSignerBench struct{}

func (m *mockSignerBench) Sign(message []byte) ([]byte, error) {
	return make([]byte, signer.SignatureSize), nil
}

func (m *mockSignerBench) Algorithm() string {
	return AlgorithmES512
}
