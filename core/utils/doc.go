// Package utils provides value coercion helpers for loosely typed input.
// Spreadsheet cells and JSON bodies hand values over as strings, floats or
// integers; these helpers turn them into the types the core works with.
package utils
