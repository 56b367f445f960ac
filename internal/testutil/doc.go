// Package testutil contains fluent builders used across tests to reduce
// boilerplate when constructing records, metadata and fixtures. They are
// not intended for production usage.
package testutil
