package signer

const (
	// AlgorithmES512 is the JWS "alg" identifier implemented by this package
	AlgorithmES512 = "ES512"

	// CoordinateSize is the byte length of each signature integer once
	// zero-padded: ceil(521/8) for P-521 coordinates
	CoordinateSize = 66

	// SignatureSize is the byte length of a raw signature, r then s
	SignatureSize = 2 * CoordinateSize
)

// MessageSigner produces raw JWS signatures over arbitrary messages.
//
// Implementations hold no per-call state and must be safe for
// concurrent use from multiple goroutines.
type MessageSigner interface {
	// Sign returns the raw signature over message
	Sign(message []byte) ([]byte, error)

	// Algorithm returns the JWS "alg" identifier of the signatures
	// this signer produces
	Algorithm() string
}
