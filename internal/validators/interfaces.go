// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies accepted by the notes API.
//
// A Validator can be scoped to a subset of fields by passing their names,
// e.g. registration validates both credential fields while note creation
// only needs the title.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
