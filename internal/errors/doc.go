// Package apperrors carries the error vocabulary shared by every surface of
// the application: typed error classes that map onto process exit codes, plus
// helpers for wrapping and classifying causes.
//
// Every type cooperates with errors.Is and errors.As. CalculationError
// exposes Unwrap so a cause placed inside it stays reachable, and WrapError
// builds on fmt.Errorf with %w for the same reason.
//
// Validation failures get the richest treatment: a ValidationError records
// the offending raw input and a ValidationKind, because the presentation
// layer echoes the bad text back to the user and phrases the two rejection
// classes differently.
package apperrors
