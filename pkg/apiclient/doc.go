// Package apiclient turns endpoint-plus-payload calls into settled results
// or structured errors, handling the cross-cutting concerns of talking to
// the influmatch backend: credential attachment, per-call timeouts, opt-in
// retries with linear backoff, content-type aware decoding, and forced
// logout on an invalid session.
//
// The client resolves relative endpoints against its base URL, attaches the
// session ID and bearer token from its credential source, and arms one
// cancellation deadline per call. Failures are classified into a *Error
// carrying the backend-supplied message, code, and details when present:
//
//   - a deadline that fires maps to status 408 and is never retried;
//   - a 401 clears the credential source, navigates to the login path
//     (unless already there), and is never retried;
//   - a 403 is never retried and never triggers logout;
//   - any other non-2xx status or transport failure is retried while the
//     per-call budget lasts, then escalated.
//
// Retries re-issue the request as-is. They do not special-case method
// idempotency, so a caller that sets a retry budget on a POST accepts the
// risk of duplicate side effects.
//
// Usage:
//
//	client := apiclient.New("https://api.influmatch.io/v1",
//	    apiclient.WithCredentialSource(store),
//	)
//	resp, err := client.Get(ctx, "/campaigns/active", nil)
//	if apiclient.IsUnauthorized(err) {
//	    // session already cleared, login flow triggered
//	}
package apiclient
