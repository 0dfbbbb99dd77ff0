package cmd

import (
	"fmt"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/spf13/cobra"
)

var (
	addName     string
	addQuantity string
	addPrice    string
	addDate     string
)

// addCmd adds a product or updates it when the given date is newer.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product, or update it if the date is newer",
	Long: `Adds a product by name. When a product with the same name exists it is only
updated if --date is later than its stored date. The date defaults to today.

Example:
  inventory add --name "Widget" --quantity 5 --price 12.50`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "Product name")
	addCmd.Flags().StringVar(&addQuantity, "quantity", "", "Quantity in stock")
	addCmd.Flags().StringVar(&addPrice, "price", "", "Price in dollars, e.g. 12.50")
	addCmd.Flags().StringVar(&addDate, "date", "", "Date updated as M/D/YYYY (default today)")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("quantity")
	_ = addCmd.MarkFlagRequired("price")
	RootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	p, err := productFromFlags()
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	stored, outcome, err := a.service.Add(cmd.Context(), p)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch outcome {
	case reconcile.Inserted:
		fmt.Fprintf(out, "%s saved to database.  ID: %d\n", stored.Name, stored.ID)
	case reconcile.Updated:
		fmt.Fprintf(out, "%s updated.\n", stored.Name)
	default:
		fmt.Fprintf(out, "%s was last updated %s, which is not older.  Nothing changed.\n",
			stored.Name, inventory.FormatDate(stored.UpdatedOn))
	}
	return nil
}

// productFromFlags parses the flags the same way import rows are parsed.
// The date stays zero when --date is absent so the service stamps today.
func productFromFlags() (models.Product, error) {
	if addDate != "" {
		return inventory.ParseRow(map[string]string{
			inventory.ColumnName:     addName,
			inventory.ColumnQuantity: addQuantity,
			inventory.ColumnPrice:    addPrice,
			inventory.ColumnDate:     addDate,
		})
	}

	if addName == "" {
		return models.Product{}, &inventory.ParseError{Field: inventory.FieldName, Value: addName}
	}
	qty, err := inventory.ParseQuantity(addQuantity)
	if err != nil {
		return models.Product{}, err
	}
	cents, err := inventory.ParsePrice(addPrice)
	if err != nil {
		return models.Product{}, err
	}
	return models.Product{Name: addName, Quantity: qty, PriceCents: cents}, nil
}
