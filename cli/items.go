package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"inventory_ledger/domain"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// add
	var name string
	var price float64
	var quantity uint64
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			id, err := itemStore.Add(context.Background(), name, quantity, price)
			if err != nil {
				slog.Error("add failed", "name", name, "error", err)
				return err
			}
			slog.Info("item added", "item_id", id, "duration_ms", time.Since(start).Milliseconds())
			item, err := itemStore.Get(context.Background(), id)
			if err != nil {
				return err
			}
			printJSON(item)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "name")
	addCmd.Flags().Float64Var(&price, "price", 0, "unit price")
	addCmd.Flags().Uint64Var(&quantity, "quantity", 0, "units in stock")
	rootCmd.AddCommand(addCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get item details by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			item, err := itemStore.Get(context.Background(), id)
			if err != nil {
				if domain.IsItemNotFoundError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			printJSON(item)
			return nil
		},
	}
	rootCmd.AddCommand(getCmd)

	// update
	var uName string
	var uPrice float64
	var uQuantity uint64
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var u domain.ItemUpdate
			if cmd.Flags().Changed("name") {
				u.Name = &uName
			}
			if cmd.Flags().Changed("price") {
				u.Price = &uPrice
			}
			if cmd.Flags().Changed("quantity") {
				u.Quantity = &uQuantity
			}
			if u.Empty() {
				return errors.New("nothing to update: pass --name, --quantity or --price")
			}

			start := time.Now()
			if err := itemStore.Update(context.Background(), id, u); err != nil {
				slog.Error("update failed", "item_id", id, "error", err)
				return err
			}

			slog.Info(
				"item updated",
				"item_id", id,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			item, err := itemStore.Get(context.Background(), id)
			if err != nil {
				return err
			}
			printJSON(item)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&uName, "name", "", "name")
	updateCmd.Flags().Float64Var(&uPrice, "price", 0, "unit price")
	updateCmd.Flags().Uint64Var(&uQuantity, "quantity", 0, "units in stock")
	rootCmd.AddCommand(updateCmd)

	// remove
	var force bool
	removeCmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"delete"},
		Short:   "Remove an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !force {
				fmt.Printf("Remove item %d? (y/N): ", id)
				resp, _ := stdin.ReadString('\n')
				if resp = strings.TrimSpace(resp); resp != "y" && resp != "Y" {
					fmt.Println("aborted")
					return nil
				}
			}
			if err := itemStore.Remove(context.Background(), id); err != nil {
				slog.Error("remove failed", "item_id", id, "error", err)
				return err
			}
			slog.Info("item removed", "item_id", id)
			fmt.Println("removed")
			return nil
		},
	}
	removeCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	rootCmd.AddCommand(removeCmd)

	// list
	var lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the whole inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := itemStore.List(context.Background())
			if err != nil {
				return err
			}
			printItems(out, lOutput)
			return nil
		},
	}
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format: json or table")
	rootCmd.AddCommand(listCmd)

	// search
	var sOutput string
	searchCmd := &cobra.Command{
		Use:   "search <substring>",
		Short: "Search items by name, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := itemStore.Search(context.Background(), args[0])
			if err != nil {
				return err
			}
			printItems(out, sOutput)
			return nil
		},
	}
	searchCmd.Flags().StringVar(&sOutput, "output", "", "output format: json or table")
	rootCmd.AddCommand(searchCmd)

	// reorder
	var rOutput string
	reorderCmd := &cobra.Command{
		Use:   "reorder [threshold]",
		Short: "List items with fewer units than threshold",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold := viper.GetUint64("reorder-threshold")
			if len(args) == 1 {
				v, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid threshold %q", args[0])
				}
				threshold = v
			}
			out, err := itemStore.ReorderSuggestions(context.Background(), threshold)
			if err != nil {
				return err
			}
			printItems(out, rOutput)
			return nil
		},
	}
	reorderCmd.Flags().StringVar(&rOutput, "output", "", "output format: json or table")
	rootCmd.AddCommand(reorderCmd)
}
