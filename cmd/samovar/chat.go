package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/samovar"
	"github.com/aretw0/samovar/pkg/domain"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Order interactively from the terminal",
	Long: `Runs the ordering conversation on stdin/stdout: browse the menu by
number, manage the cart, and check out. The same flow a chat transport
would drive, rendered on a terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		menu, _ := cmd.Flags().GetString("menu")
		name, _ := cmd.Flags().GetString("name")

		flow, err := samovar.New(menu)
		if err != nil {
			fmt.Printf("Error initializing samovar: %v\n", err)
			os.Exit(1)
		}

		if err := runChat(flow, name); err != nil {
			fmt.Printf("Chat error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	chatCmd.Flags().String("name", "", "Customer name to put on the order")
	rootCmd.AddCommand(chatCmd)
}

const chatHelp = `Commands: a number picks an entry; back, cart, menu, clear, yes,
checkout, pay, help, quit.`

func runChat(flow *samovar.Flow, customerName string) error {
	ctx := context.Background()
	const userID = "terminal"

	fmt.Println("Добро пожаловать! Чтобы сделать заказ, выберите раздел меню.")
	fmt.Println(chatHelp)

	resp, err := flow.HandleEvent(ctx, userID, domain.Event{Kind: domain.EventOpenMenu})
	if err != nil {
		return err
	}
	printResponse(resp)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit":
			fmt.Println("До свидания!")
			return nil
		case "help":
			fmt.Println(chatHelp)
			continue
		}

		ev, ok := eventFor(input, resp, customerName)
		if !ok {
			fmt.Println("Не понял. Наберите help для списка команд.")
			continue
		}

		next, err := flow.HandleEvent(ctx, userID, ev)
		if err != nil {
			return err
		}
		resp = next
		printResponse(resp)
	}
}

// eventFor translates terminal input into a typed event, using the last
// response to resolve numeric picks against the offered entries.
func eventFor(input string, last domain.Response, customerName string) (domain.Event, bool) {
	switch strings.ToLower(input) {
	case "back":
		return domain.Event{Kind: domain.EventBack}, true
	case "cart":
		return domain.Event{Kind: domain.EventOpenCart}, true
	case "menu":
		return domain.Event{Kind: domain.EventOpenMenu}, true
	case "clear":
		return domain.Event{Kind: domain.EventClearCartRequest}, true
	case "yes":
		return domain.Event{Kind: domain.EventClearCartConfirm}, true
	case "checkout":
		return domain.Event{Kind: domain.EventCheckout, CustomerName: customerName}, true
	case "pay":
		return domain.Event{Kind: domain.EventConfirmPayment}, true
	}

	// Numbers pick an entry from the screen we just rendered.
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(last.Refs) {
		// In the cart a "+name" / "-name" adjusts a line.
		if strings.HasPrefix(input, "+") || strings.HasPrefix(input, "-") {
			delta := 1
			if input[0] == '-' {
				delta = -1
			}
			return domain.Event{
				Kind:  domain.EventAdjustQuantity,
				Ref:   strings.TrimSpace(input[1:]),
				Delta: delta,
			}, true
		}
		return domain.Event{}, false
	}

	ref := last.Refs[n-1]
	if last.Kind == domain.RespShowItemsText {
		return domain.Event{Kind: domain.EventSelectItem, Ref: ref}, true
	}
	return domain.Event{Kind: domain.EventSelectSection, Ref: ref}, true
}

func printResponse(resp domain.Response) {
	switch resp.Kind {
	case domain.RespShowSection:
		if resp.Text != "" {
			fmt.Println(resp.Text)
		}
		for i, title := range resp.Entries {
			fmt.Printf("  %d. %s\n", i+1, title)
		}
	case domain.RespShowItemsText:
		fmt.Println(resp.Text)
		if len(resp.Entries) > 0 {
			fmt.Println("\nДобавить в корзину:")
			for i, name := range resp.Entries {
				fmt.Printf("  %d. %s\n", i+1, name)
			}
		}
	case domain.RespCartSummary:
		if len(resp.Lines) == 0 {
			fmt.Println("Ваша корзина пуста.")
			return
		}
		fmt.Println("Ваша корзина:")
		for _, l := range resp.Lines {
			fmt.Printf("  - %s: %d шт. x %d руб = %d руб\n", l.Name, l.Quantity, l.UnitPrice, l.Subtotal())
		}
		fmt.Printf("Общая стоимость: %d руб\n", resp.Total)
	case domain.RespOrderConfirmation:
		if resp.Screen == domain.ScreenPaymentConfirmed {
			fmt.Printf("Спасибо за оплату! Ваш номер заказа: %d\n", resp.OrderID)
			return
		}
		fmt.Printf("Ваш заказ №%d:\n", resp.OrderID)
		for _, l := range resp.Lines {
			fmt.Printf("  - %s: %d шт. x %d руб = %d руб\n", l.Name, l.Quantity, l.UnitPrice, l.Subtotal())
		}
		fmt.Printf("Сумма: %d руб. Наберите pay для оплаты.\n", resp.Total)
	case domain.RespRejected:
		fmt.Println(rejectionText(resp.Reason))
	}
}

func rejectionText(reason domain.RejectReason) string {
	switch reason {
	case domain.ReasonEmptyCart:
		return "Корзина пуста, нечего оплачивать."
	case domain.ReasonUnknownItem, domain.ReasonUnknownReference:
		return "Такого товара больше нет."
	case domain.ReasonLineNotFound:
		return "Этого товара нет в корзине."
	default:
		return "Это действие сейчас недоступно."
	}
}
