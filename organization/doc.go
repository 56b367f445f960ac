// Package organization contains in-memory implementations of the
// core.OrganizationService contract for unit tests.
//
// FakeService serves canned fixture records and metadata, evaluates queries
// with a linear scan, and records every Create / Update / Delete / Execute
// call so tests can assert on what the plugin under test did. MockService is
// an expectation-style alternative built on testify's mock package.
//
// Plugin code should depend on core.OrganizationService; tests pick an
// implementation from this package at wiring time.
package organization
