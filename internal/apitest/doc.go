// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apitest is an in-memory implementation of the notes REST API.
//
// It serves the same routes as the production backend (/api/auth/login,
// /api/auth/register and /api/notes) with bearer-token auth, so the client
// stack can be exercised end to end without a database or a network:
//
//	api, srv := testserver.New(t, logger.Nop())
//	adapter, _ := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL}, log)
//
// Tokens are HS256 JWTs. [API.RevokeTokens] invalidates every token issued
// so far, which is how tests simulate an expired session.
package apitest
