// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// Both the configuration loader and the .cue asset document reader follow the
// same three steps:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with schema
//  3. Validate and decode to Go struct
//
// # Usage
//
//	//go:embed document_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[wireDocument](
//	    schemaBytes,
//	    data,
//	    "#Document",
//	    cueutil.WithFilename("quests/intro.cue"),
//	)
//	if err != nil {
//	    return nil, err // Error includes the CUE path of the bad field
//	}
//	return result.Value, nil
package cueutil
