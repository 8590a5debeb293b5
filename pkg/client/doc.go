// Package client submits ES512-signed payloads to the Payouts API.
//
// A signed submission sends the normalized payload as the raw request
// body and the detached JWS in a signature header (X-TL-Signature by
// default), alongside bearer authentication:
//
//	POST /v1/test HTTP/1.1
//	Content-Type: application/json
//	Authorization: Bearer <access-token>
//	X-TL-Signature: <header>..<signature>
//
//	{"foo":"bar"}
//
// The verifier rebuilds the compact JWS from the body it received and
// the two detached segments, then checks the ES512 signature.
//
// # Basic Usage
//
//	c := client.NewClient(endpoint, accessToken)
//
//	result, err := c.Submit(ctx, body, detachedJWS)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Success() {
//	    log.Printf("rejected: %s: %s", result.Status, result.Body)
//	}
//
// A Go error means the request never completed (transport failure,
// context cancellation). An HTTP rejection comes back as a Result so
// the caller can inspect the status and body the API returned.
//
// # Retries
//
// Transport errors and 5xx responses can be retried with exponential
// backoff:
//
//	c := client.NewClient(endpoint, accessToken, client.WithRetries(3))
//
// 4xx responses are never retried; resubmitting the same signed bytes
// cannot change the outcome. Timeouts belong to the injected
// http.Client or the caller's context, never to the signing path.
package client
