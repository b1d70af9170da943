package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/samovar/pkg/catalog"
	"github.com/aretw0/samovar/pkg/domain"
	"github.com/aretw0/samovar/pkg/navigation"
)

func testEngine(t *testing.T) (*navigation.Engine, *catalog.Catalog) {
	t.Helper()

	c, err := catalog.New(catalog.Definition{
		Root: "menu",
		Sections: []domain.MenuNode{
			{ID: "menu", Title: "Меню", Sections: []string{"main", "desserts"}},
			{ID: "main", Title: "Основное меню", Sections: []string{"soups"}},
			{ID: "soups", Title: "Суп", Items: []string{"Борщ", "Том Ям"}},
			{ID: "desserts", Title: "Десерты", Items: []string{"Чизкейк"}},
		},
		Items: []domain.Item{
			{Name: "Борщ", Price: 200},
			{Name: "Том Ям", Price: 350},
			{Name: "Чизкейк", Price: 300},
		},
	})
	require.NoError(t, err)
	return navigation.NewEngine(c), c
}

func TestClassify(t *testing.T) {
	e, c := testEngine(t)

	root := c.Root()
	assert.Equal(t, domain.ScreenRoot, e.Classify(root))

	main, _ := c.Node("main")
	assert.Equal(t, domain.ScreenSectionListing, e.Classify(main))

	soups, _ := c.Node("soups")
	assert.Equal(t, domain.ScreenItemDetail, e.Classify(soups))
}

func TestSelectSection(t *testing.T) {
	e, c := testEngine(t)
	root := c.Root()

	target, screen, err := e.SelectSection(root, "main")
	require.NoError(t, err)
	assert.Equal(t, "main", target.ID)
	assert.Equal(t, domain.ScreenSectionListing, screen)

	// soups exists but is not a child of the root.
	_, _, err = e.SelectSection(root, "soups")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// A token for a section that never existed is a stale reference.
	_, _, err = e.SelectSection(root, "ghost")
	assert.ErrorIs(t, err, domain.ErrUnknownReference)
}

func TestSelectItem(t *testing.T) {
	e, c := testEngine(t)
	soups, _ := c.Node("soups")

	item, err := e.SelectItem(soups, "Борщ")
	require.NoError(t, err)
	assert.Equal(t, 200, item.Price)

	// Чизкейк exists but lives on another page.
	_, err = e.SelectItem(soups, "Чизкейк")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Removed-from-catalog tokens are unknown references.
	_, err = e.SelectItem(soups, "УжеНетТакогоТовара")
	assert.ErrorIs(t, err, domain.ErrUnknownReference)
}

func TestBack(t *testing.T) {
	e, c := testEngine(t)

	soups, _ := c.Node("soups")
	parent, screen, err := e.Back(soups)
	require.NoError(t, err)
	assert.Equal(t, "main", parent.ID)
	assert.Equal(t, domain.ScreenSectionListing, screen)

	parent, screen, err = e.Back(parent)
	require.NoError(t, err)
	assert.Equal(t, "menu", parent.ID)
	assert.Equal(t, domain.ScreenRoot, screen)

	_, _, err = e.Back(c.Root())
	assert.ErrorIs(t, err, domain.ErrNoParent)
}
