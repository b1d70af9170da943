package samovar_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/samovar"
	"github.com/aretw0/samovar/pkg/catalog"
	"github.com/aretw0/samovar/pkg/domain"
)

// ExampleNew demonstrates using Samovar purely as a Go library, injecting
// an in-memory catalog without reading a menu file.
func ExampleNew() {
	// 1. Define the menu using pure Go structs
	menu, err := catalog.New(catalog.Definition{
		Root: "menu",
		Sections: []domain.MenuNode{
			{ID: "menu", Title: "Меню", Sections: []string{"soups"}},
			{ID: "soups", Title: "Супы", Items: []string{"Борщ"}},
		},
		Items: []domain.Item{
			{Name: "Борщ", Price: 200},
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	// 2. Initialize the flow with the custom catalog.
	// No file path needed ("") because we are providing a catalog.
	flow, err := samovar.New("", samovar.WithCatalog(menu))
	if err != nil {
		log.Fatal(err)
	}

	// 3. Drive one user through menu, cart, and checkout.
	ctx := context.Background()
	events := []domain.Event{
		{Kind: domain.EventOpenMenu},
		{Kind: domain.EventSelectSection, Ref: "soups"},
		{Kind: domain.EventSelectItem, Ref: "Борщ"},
		{Kind: domain.EventOpenCart},
		{Kind: domain.EventCheckout, CustomerName: "Алиса"},
		{Kind: domain.EventConfirmPayment},
	}

	var last domain.Response
	for _, ev := range events {
		last, err = flow.HandleEvent(ctx, "alice", ev)
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("order %d, total %d\n", last.OrderID, last.Total)
	// Output: order 1, total 200
}
