// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators normalizes and validates inbound user fields.
//
// Field checks ([String], [Phone], [TosAgreement]) are pure: they return the
// trimmed value or report the field as absent, and never coerce across JSON
// types. [UserFormFromPayload] and [UserFormFromQuery] apply them to a whole
// request, and a [Validator] decides whether the resulting form carries the
// fields an operation requires.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
