// Command catalog-cli is a terminal frontend for the catalog API. It drives
// the same client and view models a graphical frontend would: a product list
// with category filter, search, and pagination, and a product form with
// field validation and inline category creation.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"catalog/internal/ui"
	"catalog/pkg/client"
)

func main() {
	viper.SetDefault("CATALOG_API_URL", "http://localhost:8080/api")
	viper.AutomaticEnv()

	api := client.New(viper.GetString("CATALOG_API_URL"), client.NewSession())
	api.OnUnauthorized = func() {
		fmt.Println("Session expired. Please log in again.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	list := ui.NewListView(api)
	list.Confirm = func(prompt string) bool {
		fmt.Printf("%s [y/N]: ", prompt)
		if !scanner.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		return answer == "y" || answer == "yes"
	}

	ctx := context.Background()
	fmt.Println("catalog-cli — type 'help' for commands")

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		command, args := fields[0], fields[1:]

		switch command {
		case "help":
			printHelp()
		case "quit", "exit":
			return
		case "login":
			if len(args) != 2 {
				fmt.Println("usage: login <email> <password>")
				continue
			}
			if _, err := api.Login(ctx, args[0], args[1]); err != nil {
				fmt.Println("Login failed:", err)
				continue
			}
			fmt.Println("Logged in.")
			if err := list.Load(ctx); err != nil {
				fmt.Println("Failed to load catalog:", err)
			}
		case "logout":
			if err := api.Logout(ctx); err != nil {
				fmt.Println("Logout failed:", err)
			} else {
				fmt.Println("Logged out.")
			}
		case "me":
			user, err := api.Me(ctx)
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			fmt.Printf("%s <%s>\n", user.Name, user.Email)
		case "list":
			printList(list)
		case "categories":
			for _, c := range list.Categories() {
				fmt.Printf("%4d  %s\n", c.ID, c.Name)
			}
		case "filter":
			if len(args) != 1 {
				fmt.Println("usage: filter <category-id|all>")
				continue
			}
			var id uint
			if args[0] != "all" {
				parsed, err := strconv.ParseUint(args[0], 10, 32)
				if err != nil {
					fmt.Println("filter takes a category id or 'all'")
					continue
				}
				id = uint(parsed)
			}
			if err := list.SetCategoryFilter(ctx, id); err != nil {
				fmt.Println("Error:", err)
				continue
			}
			printList(list)
		case "search":
			list.SetSearch(strings.Join(args, " "))
			printList(list)
		case "page":
			n, err := strconv.Atoi(strings.Join(args, ""))
			if err != nil {
				fmt.Println("usage: page <n>")
				continue
			}
			list.SetPage(n)
			printList(list)
		case "size":
			n, err := strconv.Atoi(strings.Join(args, ""))
			if err != nil {
				fmt.Println("usage: size <n>")
				continue
			}
			if err := list.SetPageSize(n); err != nil {
				fmt.Printf("Error: %v (options: %v)\n", err, ui.PageSizeOptions)
				continue
			}
			printList(list)
		case "delete":
			id, err := strconv.ParseUint(strings.Join(args, ""), 10, 32)
			if err != nil {
				fmt.Println("usage: delete <id>")
				continue
			}
			if err := list.Delete(ctx, uint(id)); err != nil {
				fmt.Println("Error:", err)
			}
		case "new":
			runForm(ctx, scanner, ui.NewCreateForm(api), list)
		case "edit":
			id, err := strconv.ParseUint(strings.Join(args, ""), 10, 32)
			if err != nil {
				fmt.Println("usage: edit <id>")
				continue
			}
			runForm(ctx, scanner, ui.NewEditForm(api, uint(id)), list)
		default:
			fmt.Println("Unknown command; type 'help'")
		}
	}
}

// runForm drives one create/edit flow: load, prompt every field, submit, and
// on success reload the list.
func runForm(ctx context.Context, scanner *bufio.Scanner, form *ui.FormView, list *ui.ListView) {
	if err := form.Load(ctx); err != nil {
		fmt.Println("Failed to load form:", err)
		return
	}

	saved := false
	form.OnSaved = func() { saved = true }

	form.Name = promptField(scanner, "Name", form.Name)
	form.Description = promptField(scanner, "Description", form.Description)
	form.Price = promptField(scanner, "Price", form.Price)
	form.StockQuantity = promptField(scanner, "Stock quantity", form.StockQuantity)

	fmt.Println("Categories ('new' to create one inline):")
	for _, c := range form.Categories() {
		fmt.Printf("%4d  %s\n", c.ID, c.Name)
	}
	current := ""
	if form.CategoryID != 0 {
		current = strconv.FormatUint(uint64(form.CategoryID), 10)
	}
	choice := promptField(scanner, "Category id", current)
	if choice == "new" {
		name := promptField(scanner, "New category name", "")
		description := promptField(scanner, "New category description", "")
		if _, err := form.CreateCategory(ctx, name, description); err != nil {
			fmt.Println("Failed to create category:", err)
		}
	} else if id, err := strconv.ParseUint(choice, 10, 32); err == nil {
		form.CategoryID = uint(id)
	}

	form.Status = promptField(scanner, "Status (active/inactive/out_of_stock)", form.Status)

	if err := form.Submit(ctx); err != nil {
		for field, message := range form.FieldErrors() {
			fmt.Printf("  %s: %s\n", field, message)
		}
		if form.FormError() != "" {
			fmt.Println("Error:", form.FormError())
		}
		return
	}
	if saved {
		fmt.Println("Saved.")
		if err := list.Load(ctx); err != nil {
			fmt.Println("Failed to reload list:", err)
		}
	}
}

func promptField(scanner *bufio.Scanner, label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	if !scanner.Scan() {
		return current
	}
	text := strings.TrimSpace(scanner.Text())
	if text == "" {
		return current
	}
	return text
}

func printList(list *ui.ListView) {
	products := list.VisibleProducts()
	if len(products) == 0 {
		fmt.Println("No products found")
		return
	}
	fmt.Printf("%4s  %-24s %-16s %10s %6s  %s\n", "ID", "NAME", "CATEGORY", "PRICE", "STOCK", "STATUS")
	for _, p := range products {
		fmt.Printf("%4d  %-24s %-16s %10.2f %6d  %s\n",
			p.ID, p.Name, list.CategoryName(p.CategoryID), p.Price, p.StockQuantity, p.Status)
	}
	fmt.Printf("page %d, %d matching products\n", list.Page(), list.TotalFiltered())
}

func printHelp() {
	fmt.Println(`Commands:
  login <email> <password>   authenticate and load the catalog
  logout                     revoke the current token
  me                         show the authenticated user
  list                       show the current page
  categories                 show all categories
  filter <category-id|all>   filter products by category (server-side)
  search <term>              search name/description (client-side)
  page <n> / size <n>        pagination controls
  new / edit <id>            create or edit a product
  delete <id>                delete a product (asks for confirmation)
  quit`)
}
