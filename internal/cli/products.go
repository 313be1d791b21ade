package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fragranceshop/fragrance-admin/internal/product"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage products",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products (filtered, paged)",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		page, _ := cmd.Flags().GetInt("page")

		s := product.NewScreen(newClient())
		ctx := context.Background()
		if err := s.Load(ctx); err != nil {
			return errors.New(s.Banner())
		}
		s.SetSearch(search)
		s.SetPage(page)

		rows := make([][]string, 0)
		for _, p := range s.Visible() {
			rows = append(rows, []string{
				strconv.FormatInt(p.ID, 10),
				p.Name,
				p.Brand,
				orNA(p.Concentration),
				"$" + p.Price.StringFixed(2),
				strconv.Itoa(p.StockQuantity),
			})
		}
		table([]string{"ID", "NAME", "BRAND", "CONCENTRATION", "PRICE", "STOCK"}, rows)
		pageFooter(s.Page(), s.TotalPages(), s.FilteredCount())
		return nil
	},
}

func productFlags(c *cobra.Command) {
	c.Flags().String("name", "", "product name")
	c.Flags().String("brand", "", "brand")
	c.Flags().String("price", "", "price, e.g. 79.90")
	c.Flags().String("stock", "", "stock quantity")
	c.Flags().String("concentration", "", "EDT / EDP / Parfum")
	c.Flags().String("description", "", "description")
}

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := product.NewScreen(newClient())
		s.OpenAdd()
		f := s.Form()
		f.Name, _ = cmd.Flags().GetString("name")
		f.Brand, _ = cmd.Flags().GetString("brand")
		f.Price, _ = cmd.Flags().GetString("price")
		f.StockQuantity, _ = cmd.Flags().GetString("stock")
		f.Concentration, _ = cmd.Flags().GetString("concentration")
		f.Description, _ = cmd.Flags().GetString("description")

		if err := s.Submit(context.Background()); err != nil {
			if errors.Is(err, product.ErrValidation) {
				return fieldErrors(s.FieldErrors())
			}
			return errors.New(s.Banner())
		}
		fmt.Println("product created")
		return nil
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		ctx := context.Background()
		client := newClient()
		cur, err := client.GetProduct(ctx, id)
		if err != nil {
			return fmt.Errorf("product %d: %w", id, err)
		}

		s := product.NewScreen(client)
		s.OpenEdit(*cur)
		f := s.Form()
		for flag, dst := range map[string]*string{
			"name":          &f.Name,
			"brand":         &f.Brand,
			"price":         &f.Price,
			"stock":         &f.StockQuantity,
			"concentration": &f.Concentration,
			"description":   &f.Description,
		} {
			if cmd.Flags().Changed(flag) {
				*dst, _ = cmd.Flags().GetString(flag)
			}
		}

		if err := s.Submit(ctx); err != nil {
			if errors.Is(err, product.ErrValidation) {
				return fieldErrors(s.FieldErrors())
			}
			return errors.New(s.Banner())
		}
		fmt.Println("product updated")
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product and, best-effort, the orders referencing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		ctx := context.Background()
		client := newClient()
		cur, err := client.GetProduct(ctx, id)
		if err != nil {
			return fmt.Errorf("product %d: %w", id, err)
		}

		s := product.NewScreen(client)
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

func init() {
	productsListCmd.Flags().String("search", "", "filter by name, brand or concentration")
	productsListCmd.Flags().Int("page", 1, "page number")
	productFlags(productsAddCmd)
	productFlags(productsUpdateCmd)

	productsCmd.AddCommand(productsListCmd, productsAddCmd, productsUpdateCmd, productsDeleteCmd)
	rootCmd.AddCommand(productsCmd)
}
