package jws

import "encoding/base64"

// Encode encodes b with the URL-safe base64 alphabet and no padding,
// per RFC 7515 §2 ("Base64url Encoding").
func Encode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// Decode reverses Encode. Signature production never needs it; it
// exists so tests and verifying callers can round-trip segments.
func Decode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
