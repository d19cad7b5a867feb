// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth verifies bearer tokens on write endpoints.

# Bearer Verification

VerifyBearer checks an Authentication header value against the
configured API token:

	err := auth.VerifyBearer(r.Header.Get("Authentication"), cfg.APIToken)

The header must carry exactly "Bearer <token>". Two error values let
callers distinguish the failure mode:

  - ErrMalformedHeader: missing header or wrong scheme (401)
  - ErrWrongToken: well-formed header, token mismatch (403)

Comparison uses hmac.Equal so the check is constant time.
*/
package auth
