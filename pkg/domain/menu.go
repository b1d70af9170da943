package domain

// Item is a purchasable catalog entry. Prices are integer currency units
// (rubles in the shipped menu); the catalog never mutates after load.
type Item struct {
	Name        string `json:"name" yaml:"name"`
	Price       int    `json:"price" yaml:"price"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// MenuNode is a section in the navigation tree. A node lists either child
// sections or catalog items, never both. Parent is a pure lookup relation
// used by back navigation, not an ownership edge.
type MenuNode struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`

	// Prompt is the text shown when the node is rendered
	// (e.g. "Выберите раздел меню").
	Prompt string `json:"prompt,omitempty" yaml:"prompt,omitempty"`

	// Sections holds child node IDs, in display order.
	Sections []string `json:"sections,omitempty" yaml:"sections,omitempty"`

	// Items holds catalog item names, in display order.
	Items []string `json:"items,omitempty" yaml:"items,omitempty"`
}

// IsLeaf reports whether the node lists items rather than child sections.
func (n *MenuNode) IsLeaf() bool {
	return len(n.Sections) == 0
}

// HasSection reports whether id is a direct child section of the node.
func (n *MenuNode) HasSection(id string) bool {
	for _, s := range n.Sections {
		if s == id {
			return true
		}
	}
	return false
}

// HasItem reports whether name is directly listed on the node.
func (n *MenuNode) HasItem(name string) bool {
	for _, it := range n.Items {
		if it == name {
			return true
		}
	}
	return false
}
