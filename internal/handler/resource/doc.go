// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resource implements the handler set served by the router: the
// users CRUD resource, the ping health check and the not-found fallback.
//
// Handlers never write to a transport. Each one turns a [models.Request] into
// exactly one [models.Response]; service failures are translated through
// per-method error tables so the client only ever sees a fixed message.
package resource
