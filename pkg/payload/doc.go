// Package payload prepares request payloads for signing.
//
// The ES512 signature covers the payload's serialized bytes, not its
// parsed structure. If the bytes you sign differ from the bytes you
// send, even by whitespace or object key order, verification fails.
// Normalize therefore produces the payload's canonical bytes exactly
// once:
//
//	body, err := payload.Normalize(rawFileBytes)
//	if err != nil {
//	    // errors.Is(err, payload.ErrPayloadParse)
//	}
//
//	compact, _ := jws.SignCompact(header, body, es512)
//	result, _ := client.Submit(ctx, body, jws.Detach(compact))
//
// Normalize never round-trips the value through Go maps, so object
// key order is preserved byte for byte.
package payload
