package commands

import (
	"errors"

	"github.com/dyluth/products/internal/catalog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type addOptions struct {
	name string
	shop string
	cost float64
}

func newAddCmd(root *rootOptions) *cobra.Command {
	opts := &addOptions{}

	addCmd := &cobra.Command{
		Use:   "add FILENAME --name NAME --cost COST [--shop SHOP]",
		Short: "Add a new product",
		Long: `Append a product to the products file, creating the file if needed.

The product is added at the end of the list. Duplicates are allowed.

Examples:
  # Add bread bought at Market1
  products add products.json --name bread --shop Market1 --cost 2.5

  # Short flags
  products add products.json -n milk -s Market2 -c 1.2`,
		Args: requireFilename,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, root, opts, args[0])
		},
	}

	addCmd.Flags().StringVarP(&opts.name, "name", "n", "", "Product name (required)")
	addCmd.Flags().StringVarP(&opts.shop, "shop", "s", "", "Shop name")
	addCmd.Flags().Float64VarP(&opts.cost, "cost", "c", 0, "Product cost (required)")

	return addCmd
}

func runAdd(cmd *cobra.Command, root *rootOptions, opts *addOptions, path string) error {
	e, err := root.newEnv(cmd)
	if err != nil {
		return err
	}

	if err := requireFlags(cmd, e.printer, "name", "cost"); err != nil {
		return err
	}

	// Invalid records would be written back with defaults, so they block the add
	products, err := e.store.LoadForUpdate(path)
	if errors.Is(err, catalog.ErrValidation) {
		return fail(e.printer.ErrorWithContext(
			"cannot add to a file with invalid records",
			err.Error(),
			map[string]string{"File": path},
			[]string{"Correct the record in the products file, then run add again."},
		), err)
	}
	if err != nil {
		return reportStoreError(e.printer, path, err)
	}

	products, err = catalog.Add(products, opts.name, opts.shop, opts.cost)
	if err != nil {
		return fail(e.printer.Error(
			"invalid product",
			err.Error(),
			[]string{"Give a non-empty --name and a numeric --cost."},
		), err)
	}

	if err := e.store.Save(path, products); err != nil {
		return reportStoreError(e.printer, path, err)
	}

	e.log.Debug("product added", zap.String("path", path), zap.Int("count", len(products)))
	e.printer.Success("Added %s (shop: %q, cost: %s) to %s\n",
		opts.name, opts.shop, catalog.FormatCost(opts.cost), path)
	return nil
}
