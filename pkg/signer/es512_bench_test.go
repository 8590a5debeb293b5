package signer

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"math/big"
	"testing"
)

// Benchmark ES512 signing over a typical request-sized payload
func BenchmarkES512Sign(b *testing.B) {
	key, err := ecdsa.GenerateKey(elliptic.P521(), rand.Reader)
	if err != nil {
		b.Fatalf("Failed to generate key: %v", err)
	}

	es512, err := NewES512Signer(key)
	if err != nil {
		b.Fatalf("Failed to create signer: %v", err)
	}

	message := []byte(`eyJhbGciOiJFUzUxMiIsImtpZCI6ImJlbmNoIn0.eyJmb28iOiJiYXIifQ`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := es512.Sign(message); err != nil {
			b.Fatalf("Sign failed: %v", err)
		}
	}
}

func BenchmarkEncodeSignature(b *testing.B) {
	r, _ := rand.Int(rand.Reader, elliptic.P521().Params().N)
	s, _ := rand.Int(rand.Reader, elliptic.P521().Params().N)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = encodeSignature(r, s)
	}
}

var benchSink *big.Int

// Benchmark the round trip used by verifiers: raw bytes back to integers
func BenchmarkDecodeCoordinates(b *testing.B) {
	r, _ := rand.Int(rand.Reader, elliptic.P521().Params().N)
	s, _ := rand.Int(rand.Reader, elliptic.P521().Params().N)
	sig := encodeSignature(r, s)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = new(big.Int).SetBytes(sig[:CoordinateSize])
		benchSink = new(big.Int).SetBytes(sig[CoordinateSize:])
	}
}
