// Package domain defines the core business entities for Nexus CRM.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - State: The root aggregate of all persisted CRM data
//   - Lead: A sales prospect with pipeline stage and nested history
//   - Interaction: A logged contact event attached to a Lead
//   - Task: A schedulable action item attached to a Lead
//   - Notification: An in-app notice shown to the user
//   - User: A local profile that can own actions
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
