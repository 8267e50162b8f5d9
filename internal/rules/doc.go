// Package rules implements the row-level validation checks for manufacturer
// master data.
//
// It is intentionally split into:
//   - Three independent checks (composite note grammar, mandatory-column
//     completeness, dimension plausibility), each a pure function over one
//     row's field values
//   - A Flag result type and the aggregate combinator that folds the three
//     check results into a single pass/fail verdict
//
// No check keeps state between rows, touches the filesystem, or raises an
// error for bad data: malformed values always come back as a Fail flag. The
// enumerated domains for the composite note are passed in by the caller, so
// every check is independently testable.
package rules
