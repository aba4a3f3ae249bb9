package commands

import (
	"fmt"

	"github.com/dyluth/products/internal/catalog"
	"github.com/spf13/cobra"
)

// OutputFormat specifies how list and select print products.
type OutputFormat string

const (
	// OutputFormatTable prints a bordered, fixed-width table
	OutputFormatTable OutputFormat = "table"

	// OutputFormatJSON prints the products as a JSON array
	OutputFormatJSON OutputFormat = "json"
)

func newListCmd(root *rootOptions) *cobra.Command {
	var output string

	listCmd := &cobra.Command{
		Use:   "list FILENAME",
		Short: "List all products",
		Long: `Display every product in the products file.

Output Formats:
  table - Product, Shop and Cost columns (default). Prints nothing when
          the file is empty or does not exist.
  json  - JSON array in the same format as the products file

Examples:
  products list products.json
  products list products.json --output=json | jq '.[].product'`,
		Args: requireFilename,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, root, output, args[0])
		},
	}

	listCmd.Flags().StringVarP(&output, "output", "o", string(OutputFormatTable), "Output format: table or json")

	return listCmd
}

func runList(cmd *cobra.Command, root *rootOptions, output, path string) error {
	e, err := root.newEnv(cmd)
	if err != nil {
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

	return writeProducts(cmd, e, format, products)
}

func parseOutputFormat(cmd *cobra.Command, e *env, output string) (OutputFormat, error) {
	switch OutputFormat(output) {
	case OutputFormatTable, OutputFormatJSON:
		return OutputFormat(output), nil
	default:
		return "", usageError(e.printer, cmd, "invalid output format",
			fmt.Sprintf("Unknown format: %s (valid formats: table, json)", output))
	}
}

func writeProducts(cmd *cobra.Command, e *env, format OutputFormat, products catalog.Catalog) error {
	var err error
	switch format {
	case OutputFormatJSON:
		err = catalog.WriteJSON(cmd.OutOrStdout(), products)
	default:
		err = catalog.Render(cmd.OutOrStdout(), products, e.config.Layout())
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
