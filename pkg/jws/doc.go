// Package jws builds JSON Web Signatures (RFC 7515) in compact
// serialization, plus the detached-content variant used to sign
// Payouts API requests.
//
// # Building a Compact JWS
//
// Serialize your payload once, then sign it with an ES512 signer:
//
//	key, _ := keys.ParseECPrivateKey(pemBytes)
//	es512, _ := signer.NewES512Signer(key)
//
//	header := jws.NewES512Header(certificateID)
//	compact, err := jws.SignCompact(header, payloadBytes, es512)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The result has the familiar three-segment shape:
//
//	base64url(header).base64url(payload).base64url(signature)
//
// # Detached Content
//
// When the payload travels as the raw HTTP body, re-sending it
// base64-encoded inside a header would be redundant. The detached
// form (RFC 7515 Appendix F) keeps only the header and signature
// segments:
//
//	detached := jws.Detach(compact)
//	// base64url(header)..base64url(signature)
//
// A verifier rebuilds the middle segment from the body bytes it
// already received and verifies the result as an ordinary JWS.
//
// # Header Byte Layout
//
// The protected header is signed, so its serialized bytes must be
// reproducible. Header pins the field order to {alg, kid}:
//
//	{"alg":"ES512","kid":"<certificate-id>"}
//
// The same rule applies to the payload: SignCompact signs the exact
// bytes it is given and never re-serializes them, so a payload whose
// key order matters is carried verbatim.
//
// # Signing Payloads Verbatim
//
// SignCompact takes the payload as bytes, not as a parsed structure.
// Normalize the payload once (see the payload package) and reuse the
// same bytes for the JWS and for the HTTP request body; any
// re-serialization in between could reorder keys and invalidate the
// signature.
package jws
