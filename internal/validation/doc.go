// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

// Package validation checks request bodies with go-playground/validator v10.
//
// Field names in errors are json keys, so a rejected body can be reported
// in the caller's own terms:
//
//	if verr := validation.Validate(&req); verr != nil {
//	    rw.ValidationError(verr.Error(), verr.Details())
//	}
package validation
