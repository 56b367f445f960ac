// Package core provides the foundational domain types and service contracts
// used by the xrmtesting fakes. It defines the core abstractions for:
//
//   - Entities (records keyed by logical name and id) and their attribute values
//   - Queries (QueryExpression, FetchExpression, QueryByAttribute)
//   - Organization requests / responses dispatched through Execute
//   - Entity and attribute metadata
//   - Execution contexts handed to plugins and workflow activities
//   - Service contracts (OrganizationService, ServiceProvider, TracingService)
//
// The package intentionally keeps implementation concerns (in-memory storage,
// logging, fixture loading) out of scope, exposing small interfaces so plugin
// code under test depends on contracts rather than on the fakes themselves.
package core
