package ports

import "github.com/aretw0/samovar/pkg/domain"

// Catalog is the read-only menu collaborator. Implementations are built
// once at startup and never mutated; lookups have no side effects.
type Catalog interface {
	// Item resolves a catalog item by name.
	// Returns domain.ErrUnknownItem if the name is absent.
	Item(name string) (domain.Item, error)

	// Node resolves a menu node by ID.
	// Returns domain.ErrUnknownReference if the ID is absent.
	Node(id string) (*domain.MenuNode, error)

	// Root returns the top-level menu node.
	Root() *domain.MenuNode

	// Parent returns the registered parent of a node.
	// Returns domain.ErrNoParent for the root node.
	Parent(id string) (*domain.MenuNode, error)
}
