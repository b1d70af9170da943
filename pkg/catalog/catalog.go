// Package catalog builds the immutable menu catalog from a declarative
// definition. The catalog is constructed once at startup and is safe for
// concurrent readers; nothing mutates it afterwards.
package catalog

import (
	"fmt"

	"github.com/aretw0/samovar/pkg/domain"
)

// Definition is the declarative source of a catalog: a navigation tree of
// sections plus the priced items the leaf sections reference.
type Definition struct {
	Root     string            `yaml:"root" json:"root"`
	Sections []domain.MenuNode `yaml:"sections" json:"sections"`
	Items    []domain.Item     `yaml:"items" json:"items"`
}

// Catalog is the in-memory ports.Catalog implementation.
type Catalog struct {
	root  string
	nodes map[string]*domain.MenuNode
	items map[string]domain.Item
}

// New builds and validates a catalog from a definition.
func New(def Definition) (*Catalog, error) {
	if def.Root == "" {
		return nil, fmt.Errorf("catalog definition missing root")
	}

	c := &Catalog{
		root:  def.Root,
		nodes: make(map[string]*domain.MenuNode, len(def.Sections)),
		items: make(map[string]domain.Item, len(def.Items)),
	}

	for _, it := range def.Items {
		if it.Name == "" {
			return nil, fmt.Errorf("item with empty name")
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("item %q: negative price %d", it.Name, it.Price)
		}
		if _, dup := c.items[it.Name]; dup {
			return nil, fmt.Errorf("duplicate item %q", it.Name)
		}
		c.items[it.Name] = it
	}

	for i := range def.Sections {
		n := def.Sections[i]
		if n.ID == "" {
			return nil, fmt.Errorf("section with empty id")
		}
		if _, dup := c.nodes[n.ID]; dup {
			return nil, fmt.Errorf("duplicate section %q", n.ID)
		}
		c.nodes[n.ID] = &n
	}

	if err := c.link(); err != nil {
		return nil, err
	}
	return c, nil
}

// link derives parent edges from the section lists and validates the tree
// shape: every node except the root has exactly one parent, every child
// reference resolves, and every node is reachable from the root.
func (c *Catalog) link() error {
	if _, ok := c.nodes[c.root]; !ok {
		return fmt.Errorf("root section %q not defined", c.root)
	}

	// Parent edges are derived, never declared.
	for _, n := range c.nodes {
		n.Parent = ""
	}

	for id, n := range c.nodes {
		if len(n.Sections) > 0 && len(n.Items) > 0 {
			return fmt.Errorf("section %q lists both sub-sections and items", id)
		}
		for _, child := range n.Sections {
			childNode, ok := c.nodes[child]
			if !ok {
				return fmt.Errorf("section %q references unknown section %q", id, child)
			}
			if child == c.root {
				return fmt.Errorf("root section %q cannot be a child of %q", child, id)
			}
			if childNode.Parent != "" {
				return fmt.Errorf("section %q has two parents: %q and %q", child, childNode.Parent, id)
			}
			childNode.Parent = id
		}
		for _, name := range n.Items {
			if _, ok := c.items[name]; !ok {
				return fmt.Errorf("section %q references unknown item %q", id, name)
			}
		}
	}

	// Reachability from the root also rules out cycles among orphans.
	visited := make(map[string]bool, len(c.nodes))
	queue := []string{c.root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true
		queue = append(queue, c.nodes[id].Sections...)
	}
	for id := range c.nodes {
		if !visited[id] {
			return fmt.Errorf("section %q is unreachable from root %q", id, c.root)
		}
	}
	return nil
}

// Item resolves a catalog item by name.
func (c *Catalog) Item(name string) (domain.Item, error) {
	it, ok := c.items[name]
	if !ok {
		return domain.Item{}, fmt.Errorf("item %q: %w", name, domain.ErrUnknownItem)
	}
	return it, nil
}

// Node resolves a menu node by ID.
func (c *Catalog) Node(id string) (*domain.MenuNode, error) {
	n, ok := c.nodes[id]
	if !ok {
		return nil, fmt.Errorf("section %q: %w", id, domain.ErrUnknownReference)
	}
	return n, nil
}

// Root returns the top-level menu node.
func (c *Catalog) Root() *domain.MenuNode {
	return c.nodes[c.root]
}

// Parent returns the registered parent of a node. The root has none.
func (c *Catalog) Parent(id string) (*domain.MenuNode, error) {
	n, ok := c.nodes[id]
	if !ok {
		return nil, fmt.Errorf("section %q: %w", id, domain.ErrUnknownReference)
	}
	if n.Parent == "" {
		return nil, domain.ErrNoParent
	}
	return c.nodes[n.Parent], nil
}

// Len returns the number of catalog items.
func (c *Catalog) Len() int {
	return len(c.items)
}
