// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Schemargs - schema-driven parsing of single-character command-line flags.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package args compiles a compact schema description into typed flag
// definitions and scans argument vectors against it.
//
// # Schema syntax
//
// A schema is a comma-separated list of elements. Each element is a single
// letter identifier followed by an optional type suffix:
//
//	l     boolean flag, never takes a parameter
//	p#    integer flag, takes the next token as its parameter
//	d*    string flag, takes the next token as its parameter
//
// Empty elements are ignored, so "l,,p#," compiles to the same schema as "l,p#".
//
// # Argument syntax
//
// Only tokens starting with "-" are inspected. Several flags may be bundled
// behind one dash. Flags that need a parameter consume the following whole
// tokens in the order the flags appear:
//
//	schema := args.MustCompile("n#,b,s*")
//	parsed, err := schema.Scan([]string{"-nbs", "10", "Foo"})
//	// parsed.GetInt('n') == 10, parsed.GetBoolean('b') == true, parsed.GetString('s') == "Foo"
//
// Scanning is all-or-nothing: the first problem aborts the scan and only the
// error is returned. Errors are *Error values whose Code can be matched with
// errors.Is:
//
//	if errors.Is(err, args.ErrMissingParameter) { ... }
//
// Queries never fail. Identifiers that were not supplied, or that are not in
// the schema at all, report the zero value of the requested type.
package args
