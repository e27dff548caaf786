package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"inventory_ledger/domain"
	"inventory_ledger/util"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// parseSaleLine reads an "id:quantity" pair.
func parseSaleLine(s string) (domain.SaleRequestLine, error) {
	idStr, qtyStr, ok := strings.Cut(s, ":")
	if !ok {
		return domain.SaleRequestLine{}, fmt.Errorf("invalid sale line %q: want id:quantity", s)
	}
	id, err := strconv.ParseUint(strings.TrimSpace(idStr), 10, 64)
	if err != nil {
		return domain.SaleRequestLine{}, fmt.Errorf("invalid item id in sale line %q", s)
	}
	qty, err := strconv.ParseUint(strings.TrimSpace(qtyStr), 10, 64)
	if err != nil {
		return domain.SaleRequestLine{}, fmt.Errorf("invalid quantity in sale line %q", s)
	}
	return domain.SaleRequestLine{ItemID: id, Quantity: qty}, nil
}

func filterReceipt(records []domain.SaleRecord, receipt string) []domain.SaleRecord {
	for _, r := range records {
		if strings.EqualFold(r.ID, receipt) {
			return []domain.SaleRecord{r}
		}
	}
	return nil
}

func init() {
	// sell
	var lines []string
	sellCmd := &cobra.Command{
		Use:   "sell --line <id:quantity> [--line <id:quantity>...]",
		Short: "Record a sale; all lines are applied or none",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(lines) == 0 {
				return errors.New("at least one --line required")
			}
			req := make([]domain.SaleRequestLine, 0, len(lines))
			for _, l := range lines {
				line, err := parseSaleLine(l)
				if err != nil {
					return err
				}
				req = append(req, line)
			}

			start := time.Now()
			rec, err := salesLedger.RecordSale(context.Background(), req)
			if err != nil {
				slog.Error("sale rejected", "lines", len(req), "error", err)
				return err
			}
			slog.Info("sale recorded",
				"seq", rec.Seq,
				"receipt_id", rec.ID,
				"total_amount", rec.TotalAmount,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			printJSON(rec)
			return nil
		},
	}
	sellCmd.Flags().StringArrayVar(&lines, "line", nil, "sale line as id:quantity, repeatable")
	rootCmd.AddCommand(sellCmd)

	// sales
	var count bool
	var receipt string
	var salesOutput string
	salesCmd := &cobra.Command{
		Use:   "sales",
		Short: "List every recorded sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			if receipt != "" && !util.ValidReceiptID(receipt) {
				return fmt.Errorf("invalid receipt id %q", receipt)
			}
			if count && receipt == "" {
				n, err := salesLedger.Len(context.Background())
				if err != nil {
					return err
				}
				fmt.Println(n)
				return nil
			}
			out, err := salesLedger.Sales(context.Background())
			if err != nil {
				return err
			}
			if receipt != "" {
				out = filterReceipt(out, receipt)
				if count {
					fmt.Println(len(out))
					return nil
				}
				if len(out) == 0 {
					return fmt.Errorf("no sale with receipt id %s", receipt)
				}
			}
			if salesOutput == "json" {
				printJSON(out)
				return nil
			}
			for _, r := range out {
				fmt.Printf("%d | %s | %s | %d lines | %.2f\n",
					r.Seq, r.ID, r.Timestamp.Format(time.RFC3339), len(r.Lines), r.TotalAmount)
			}
			return nil
		},
	}
	salesCmd.Flags().BoolVar(&count, "count", false, "print only the number of sales")
	salesCmd.Flags().StringVar(&receipt, "receipt", "", "show only the sale with this receipt id")
	salesCmd.Flags().StringVar(&salesOutput, "output", "", "output format: json or table")
	rootCmd.AddCommand(salesCmd)

	// overview
	overviewCmd := &cobra.Command{
		Use:   "overview",
		Short: "Show total sales and current inventory value",
		RunE: func(cmd *cobra.Command, args []string) error {
			fo, err := salesLedger.FinancialOverview(context.Background())
			if err != nil {
				return err
			}
			printJSON(fo)
			return nil
		},
	}
	rootCmd.AddCommand(overviewCmd)

	// top
	topCmd := &cobra.Command{
		Use:   "top [n]",
		Short: "Show the best selling item names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := viper.GetInt("top-limit")
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid count %q", args[0])
				}
				n = v
			}
			out, err := salesLedger.TopSellingItems(context.Background(), n)
			if err != nil {
				return err
			}
			printJSON(out)
			return nil
		},
	}
	rootCmd.AddCommand(topCmd)
}
