package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"inventory_ledger/domain"

	"github.com/spf13/cobra"
)

// decodeItems accepts a JSON array, NDJSON, or a single JSON object.
func decodeItems(b []byte) ([]domain.Item, error) {
	btrim := bytes.TrimSpace(b)
	if len(btrim) == 0 {
		return nil, errors.New("empty file")
	}

	var items []domain.Item

	// JSON array
	if btrim[0] == '[' {
		if err := json.Unmarshal(btrim, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	// NDJSON or single JSON object
	scanner := bufio.NewScanner(bytes.NewReader(btrim))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var it domain.Item
		if err := json.Unmarshal(line, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func init() {
	// import
	var importFile string
	importCmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Add items from a JSON array or NDJSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if importFile == "" {
				return errors.New("--file required")
			}

			b, err := os.ReadFile(importFile)
			if err != nil {
				return err
			}
			items, err := decodeItems(b)
			if err != nil {
				return err
			}

			if err := itemStore.BulkImport(context.Background(), items); err != nil {
				slog.Error("import finished with errors", "file", importFile, "error", err)
				return err
			}
			slog.Info("items imported", "file", importFile, "count", len(items))
			return nil
		},
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "input file")
	rootCmd.AddCommand(importCmd)

	// export
	var exportFile, exportWhat string
	exportCmd := &cobra.Command{
		Use:   "export --file <file>",
		Short: "Write the inventory or the sales ledger to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportFile == "" {
				return errors.New("--file required")
			}

			var out interface{}
			var err error
			switch exportWhat {
			case "items":
				out, err = itemStore.List(context.Background())
			case "sales":
				out, err = salesLedger.Sales(context.Background())
			default:
				return fmt.Errorf("unknown export target: %s", exportWhat)
			}
			if err != nil {
				return err
			}

			b, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			return os.WriteFile(exportFile, b, 0o644)
		},
	}
	exportCmd.Flags().StringVar(&exportFile, "file", "", "output file")
	exportCmd.Flags().StringVar(&exportWhat, "what", "items", "what to export: items|sales")
	rootCmd.AddCommand(exportCmd)
}
