// Package navigation resolves menu transitions. The engine is a pure
// function of the catalog: it validates a selection token against the
// user's current node and reports where the user lands, without touching
// any session state itself. Callers apply the result, so a refused
// transition can never be half-applied.
package navigation

import (
	"github.com/aretw0/samovar/pkg/domain"
	"github.com/aretw0/samovar/pkg/ports"
)

// Engine validates navigation over the menu tree.
type Engine struct {
	catalog ports.Catalog
}

// NewEngine creates an engine bound to a catalog.
func NewEngine(catalog ports.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Classify maps a menu node to the screen it renders as: the root chooser,
// a listing of sub-sections, or a text page of items.
func (e *Engine) Classify(node *domain.MenuNode) domain.Screen {
	switch {
	case node.ID == e.catalog.Root().ID:
		return domain.ScreenRoot
	case node.IsLeaf():
		return domain.ScreenItemDetail
	default:
		return domain.ScreenSectionListing
	}
}

// SelectSection resolves moving from the current node into a child section.
// An ID absent from the catalog is a stale or forged token and fails with
// ErrUnknownReference; an existing section that is not a direct child of
// current fails with ErrInvalidTransition.
func (e *Engine) SelectSection(current *domain.MenuNode, id string) (*domain.MenuNode, domain.Screen, error) {
	target, err := e.catalog.Node(id)
	if err != nil {
		return nil, domain.ScreenNone, err
	}
	if !current.HasSection(id) {
		return nil, domain.ScreenNone, domain.ErrInvalidTransition
	}
	return target, e.Classify(target), nil
}

// SelectItem resolves picking an item while viewing the current node. The
// item must exist in the catalog and be listed on the node the user is
// actually looking at. Navigation state does not change on selection; the
// user stays on the page.
func (e *Engine) SelectItem(current *domain.MenuNode, name string) (domain.Item, error) {
	item, err := e.catalog.Item(name)
	if err != nil {
		return domain.Item{}, domain.ErrUnknownReference
	}
	if !current.HasItem(name) {
		return domain.Item{}, domain.ErrInvalidTransition
	}
	return item, nil
}

// Back resolves moving to the registered parent of the current node.
// The root has no parent and fails with ErrNoParent.
func (e *Engine) Back(current *domain.MenuNode) (*domain.MenuNode, domain.Screen, error) {
	parent, err := e.catalog.Parent(current.ID)
	if err != nil {
		return nil, domain.ScreenNone, err
	}
	return parent, e.Classify(parent), nil
}
