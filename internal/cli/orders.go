package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fragranceshop/fragrance-admin/internal/api"
	"github.com/fragranceshop/fragrance-admin/internal/order"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders (filtered, paged)",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		page, _ := cmd.Flags().GetInt("page")

		s := order.NewScreen(newClient())
		ctx := context.Background()
		if err := s.Load(ctx); err != nil {
			return errors.New(s.Banner())
		}
		s.SetSearch(search)
		s.SetPage(page)

		rows := make([][]string, 0)
		for _, o := range s.Visible() {
			rows = append(rows, []string{
				strconv.FormatInt(o.ID, 10),
				o.CustomerName,
				strings.Join(o.Products, ", "),
				"$" + o.TotalAmount.StringFixed(2),
				o.DateCreated,
			})
		}
		table([]string{"ID", "CUSTOMER", "PRODUCTS", "TOTAL", "DATE"}, rows)
		pageFooter(s.Page(), s.TotalPages(), s.FilteredCount())
		return nil
	},
}

func orderDraftFlags(c *cobra.Command) {
	c.Flags().Int64("customer", 0, "customer id")
	c.Flags().Int64Slice("product", nil, "product id (repeatable)")
}

var ordersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an order",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := order.NewScreen(newClient())
		ctx := context.Background()
		if err := s.Load(ctx); err != nil {
			return errors.New(s.Banner())
		}
		s.OpenAdd()
		d := s.Draft()
		d.CustomerID, _ = cmd.Flags().GetInt64("customer")
		ids, _ := cmd.Flags().GetInt64Slice("product")
		for _, id := range ids {
			d.Toggle(id)
		}
		fmt.Printf("preview total: $%s\n", s.PreviewTotal().StringFixed(2))

		if err := s.Submit(ctx); err != nil {
			return errors.New(s.Banner())
		}
		fmt.Println("order created")
		return nil
	},
}

var ordersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an order (re-selects customer and products)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		ctx := context.Background()
		client := newClient()
		if _, err := client.OrderSummary(ctx, id); err != nil {
			return fmt.Errorf("order %d: %w", id, err)
		}

		s := order.NewScreen(client)
		if err := s.Load(ctx); err != nil {
			return errors.New(s.Banner())
		}
		// The list contract exposes product names only, so the edit draft
		// always starts empty; the caller re-selects everything.
		s.OpenEdit(api.OrderSummary{ID: id})
		d := s.Draft()
		d.CustomerID, _ = cmd.Flags().GetInt64("customer")
		ids, _ := cmd.Flags().GetInt64Slice("product")
		for _, pid := range ids {
			d.Toggle(pid)
		}
		fmt.Printf("preview total: $%s\n", s.PreviewTotal().StringFixed(2))

		if err := s.Submit(ctx); err != nil {
			return errors.New(s.Banner())
		}
		fmt.Println("order updated")
		return nil
	},
}

var ordersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		ctx := context.Background()
		client := newClient()
		if _, err := client.OrderSummary(ctx, id); err != nil {
			return fmt.Errorf("order %d: %w", id, err)
		}

		s := order.NewScreen(client)
		s.OpenDelete(api.OrderSummary{ID: id})
		ran, err := s.ConfirmDelete(ctx)
		if !ran {
			return errors.New("delete not confirmed")
		}
		if err != nil {
			return errors.New(s.Banner())
		}
		fmt.Println("deleted")
		return nil
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an order summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		det, err := newClient().OrderSummary(context.Background(), id)
		if err != nil {
			return fmt.Errorf("order %d: %w", id, err)
		}
		fmt.Printf("Order #%d\n", det.ID)
		fmt.Printf("Customer: %s %s (#%d)\n", det.Customer.FirstName, det.Customer.LastName, det.Customer.ID)
		fmt.Printf("Products: %s\n", strings.Join(det.Products, ", "))
		fmt.Printf("Total:    $%s\n", det.TotalAmount.StringFixed(2))
		fmt.Printf("Date:     %s\n", det.DateCreated)
		return nil
	},
}

func init() {
	ordersListCmd.Flags().String("search", "", "filter by customer or product")
	ordersListCmd.Flags().Int("page", 1, "page number")
	orderDraftFlags(ordersCreateCmd)
	orderDraftFlags(ordersUpdateCmd)

	ordersCmd.AddCommand(ordersListCmd, ordersCreateCmd, ordersUpdateCmd,
		ordersDeleteCmd, ordersShowCmd)
	rootCmd.AddCommand(ordersCmd)
}
