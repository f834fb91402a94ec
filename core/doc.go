// Package core contains the canonical entry-facade domain contracts and
// logic: property access against a credential record, field descriptor
// construction, and URL resolution over arbitrarily named properties.
// Callers must depend on this package through the root facade or the query
// handlers; core must not depend on transport-specific adapters.
package core
