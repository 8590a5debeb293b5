// Package signer produces raw ES512 signatures for JWS construction.
//
// ES512 (RFC 7518 §3.4) is ECDSA over curve P-521 with SHA-512, with
// the signature encoded as a fixed-width byte string rather than the
// ASN.1 DER form most crypto libraries emit natively.
//
// # Signing
//
//	key, _ := keys.ParseECPrivateKey(pemBytes)
//
//	es512, err := signer.NewES512Signer(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rawSig, err := es512.Sign(message)
//
// # Raw Signature Layout
//
// A raw ES512 signature is exactly 132 bytes:
//
//	r (66 bytes, big-endian, zero-padded) || s (66 bytes, big-endian, zero-padded)
//
// 66 is ceil(521/8), the byte width of a P-521 coordinate. Each
// integer is padded independently: an r or s that happens to fit in
// fewer bytes still occupies its full 66-byte slot. P-521 guarantees
// neither integer ever needs more.
//
// # Curve Restriction
//
// ES512 is defined over P-521 only. Both NewES512Signer and Sign
// reject any other curve with ErrCurveMismatch, and the check runs
// before any hashing or signing work:
//
//	if errors.Is(err, signer.ErrCurveMismatch) {
//	    // the key is not usable for ES512
//	}
//
// # Nondeterminism
//
// ECDSA draws a fresh random nonce per signature, so signing the same
// message twice yields different, equally valid signatures. Never
// compare signatures byte for byte; verify them instead.
//
// # Concurrency
//
// An ES512Signer holds only the private key and no per-call state; it
// is safe for concurrent use from multiple goroutines.
package signer
