package commands

import (
	"github.com/dyluth/products/internal/catalog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSelectCmd(root *rootOptions) *cobra.Command {
	var (
		shop   string
		output string
	)

	selectCmd := &cobra.Command{
		Use:   "select FILENAME --shop SHOP",
		Short: "Select products from a shop",
		Long: `Display the products bought at one shop.

The shop name must match exactly (case-sensitive). Products are shown in
the order they were added. Accepts the same --output formats as list.

Examples:
  products select products.json --shop Market1
  products select products.json -s Market1 -o json`,
		Args: requireFilename,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, root, shop, output, args[0])
		},
	}

	selectCmd.Flags().StringVarP(&shop, "shop", "s", "", "Shop name to match (required)")
	selectCmd.Flags().StringVarP(&output, "output", "o", string(OutputFormatTable), "Output format: table or json")

	return selectCmd
}

func runSelect(cmd *cobra.Command, root *rootOptions, shop, output, path string) error {
	e, err := root.newEnv(cmd)
	if err != nil {
		return err
	}

	if err := requireFlags(cmd, e.printer, "shop"); err != nil {
		return err
	}

	format, err := parseOutputFormat(cmd, e, output)
	if err != nil {
		return err
	}

	products, err := e.store.Load(path)
	if err != nil {
		return reportStoreError(e.printer, path, err)
	}

	selected := catalog.SelectByShop(products, shop)
	e.log.Debug("products selected",
		zap.String("shop", shop),
		zap.Int("matched", len(selected)),
		zap.Int("total", len(products)),
	)
	if len(selected) == 0 && len(products) > 0 {
		e.printer.Warning("No products found for shop %q\n", shop)
	}

	return writeProducts(cmd, e, format, selected)
}
