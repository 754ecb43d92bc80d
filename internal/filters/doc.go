// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects the rows a command renders.
//
// A filter is a key, an operator and a target, e.g. "change=added". Several
// filters are joined with "," (or the value of LINGODIFF_FILTER_DELIM) and a
// row is kept only when it passes all of them.
//
// Operators, each of which may be negated with a leading !:
//
//   - = : equal (numeric when both sides are numbers)
//   - ~ : equal ignoring case
//   - ^ : prefix
//   - < : less than (numeric when both sides are numbers)
//   - > : greater than (numeric when both sides are numbers)
//   - @ : substring, or membership for array values
//   - / : regular expression
//
// A key with no operator keeps rows where the value is present and not
// empty.
//
// Examples:
//
//   - "change=renamed" : renamed keys only
//   - "key^menu." : keys under menu
//   - "status!=ok" : align rows that need work
//   - "new/^[A-Z]" : new values starting with a capital
//
// Filter keys are matched against the OutputKey of attributes (see the attrs
// package) and otherwise used as a path into the row.
package filters
