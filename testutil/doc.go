// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil provides shared test helpers: an in-memory SQLite
// database with the schema applied, request helpers, and assertions.
package testutil
