/*
Package ports defines the driven ports (interfaces) for the Samovar core.

These interfaces decouple the ordering flow from external implementations,
allowing the core to work with various storage backends and catalog sources.

# Key Interfaces

  - Catalog: Read-only menu and price lookups.
  - SessionStore: Responsible for persisting and loading per-user Sessions.
*/
package ports
