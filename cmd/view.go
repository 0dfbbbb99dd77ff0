package cmd

import (
	"fmt"
	"strconv"

	"inventory-manager/feature/inventory"

	"github.com/spf13/cobra"
)

// viewCmd prints a single product.
var viewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show a product by its id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 0)
		if err != nil {
			return fmt.Errorf("product id must be a number: %q", args[0])
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.service.View(cmd.Context(), uint(id))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", p.Name)
		fmt.Fprintf(out, "ID:  %d\n", p.ID)
		fmt.Fprintf(out, "Quantity:  %d\n", p.Quantity)
		fmt.Fprintf(out, "Price:  %s\n", inventory.FormatPrice(p.PriceCents))
		fmt.Fprintf(out, "Updated:  %s\n", inventory.FormatDate(p.UpdatedOn))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(viewCmd)
}
