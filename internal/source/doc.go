// Package source adapts the two public read-only catalog APIs: the
// wizarding API (characters and spells) and the potions API.
//
// The adapters issue a single HTTP GET per call and decode JSON into the
// domain types — no caching, no retries, no backoff. A non-2xx status
// surfaces as *RemoteError and a malformed payload as *DecodeError; both
// propagate to the caller unmodified. Caching on top of these calls is the
// catalog service's job.
package source
