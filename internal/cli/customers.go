package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fragranceshop/fragrance-admin/internal/customer"
)

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Manage customers",
}

var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers (filtered, paged)",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		page, _ := cmd.Flags().GetInt("page")

		s := customer.NewScreen(newClient())
		ctx := context.Background()
		if err := s.Load(ctx); err != nil {
			return errors.New(s.Banner())
		}
		s.SetSearch(search)
		s.SetPage(page)

		rows := make([][]string, 0)
		for _, c := range s.Visible() {
			rows = append(rows, []string{
				strconv.FormatInt(c.ID, 10),
				c.FirstName + " " + c.LastName,
				c.Email,
			})
		}
		table([]string{"ID", "NAME", "EMAIL"}, rows)
		pageFooter(s.Page(), s.TotalPages(), s.FilteredCount())
		return nil
	},
}

var customersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := customer.NewScreen(newClient())
		s.OpenAdd()
		f := s.Form()
		f.FirstName, _ = cmd.Flags().GetString("first")
		f.LastName, _ = cmd.Flags().GetString("last")
		f.Email, _ = cmd.Flags().GetString("email")

		if err := s.Submit(context.Background()); err != nil {
			if errors.Is(err, customer.ErrValidation) {
				return fieldErrors(s.FieldErrors())
			}
			return errors.New(s.Banner())
		}
		fmt.Println("customer created")
		return nil
	},
}

var customersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		ctx := context.Background()
		client := newClient()
		cur, err := client.GetCustomer(ctx, id)
		if err != nil {
			return fmt.Errorf("customer %d: %w", id, err)
		}

		s := customer.NewScreen(client)
		s.OpenEdit(*cur)
		f := s.Form()
		if cmd.Flags().Changed("first") {
			f.FirstName, _ = cmd.Flags().GetString("first")
		}
		if cmd.Flags().Changed("last") {
			f.LastName, _ = cmd.Flags().GetString("last")
		}
		if cmd.Flags().Changed("email") {
			f.Email, _ = cmd.Flags().GetString("email")
		}

		if err := s.Submit(ctx); err != nil {
			if errors.Is(err, customer.ErrValidation) {
				return fieldErrors(s.FieldErrors())
			}
			return errors.New(s.Banner())
		}
		fmt.Println("customer updated")
		return nil
	},
}

var customersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a customer and, best-effort, its orders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		ctx := context.Background()
		client := newClient()
		cur, err := client.GetCustomer(ctx, id)
		if err != nil {
			return fmt.Errorf("customer %d: %w", id, err)
		}

		s := customer.NewScreen(client)
		s.OpenDelete(*cur)
		res, ran := s.ConfirmDelete(ctx)
		if !ran {
			return errors.New("delete not confirmed")
		}
		if res.Err != nil {
			reportCascade(res)
			return errors.New(s.Banner())
		}
		reportCascade(res)
		return nil
	},
}

var customersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a customer with its orders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		sum, err := newClient().CustomerSummary(context.Background(), id)
		if err != nil {
			return fmt.Errorf("customer %d: %w", id, err)
		}
		fmt.Printf("Customer #%d\n%s %s\n%s\n\n", sum.ID, sum.FirstName, sum.LastName, sum.Email)
		if len(sum.Orders) == 0 {
			fmt.Println("No orders for this customer yet.")
			return nil
		}
		rows := make([][]string, 0, len(sum.Orders))
		for _, o := range sum.Orders {
			rows = append(rows, []string{
				strconv.FormatInt(o.ID, 10),
				"$" + o.TotalAmount.StringFixed(2),
				o.DateCreated,
			})
		}
		table([]string{"ORDER", "TOTAL", "DATE"}, rows)
		return nil
	},
}

func init() {
	customersListCmd.Flags().String("search", "", "filter by name or email")
	customersListCmd.Flags().Int("page", 1, "page number")

	for _, c := range []*cobra.Command{customersAddCmd, customersUpdateCmd} {
		c.Flags().String("first", "", "first name")
		c.Flags().String("last", "", "last name")
		c.Flags().String("email", "", "email address")
	}

	customersCmd.AddCommand(customersListCmd, customersAddCmd, customersUpdateCmd,
		customersDeleteCmd, customersShowCmd)
	rootCmd.AddCommand(customersCmd)
}
