// Package cli provides the Cobra-based CLI for inventory-ledger.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"inventory_ledger/domain"
	"inventory_ledger/ledger"
	"inventory_ledger/store"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:           "inventory-ledger",
		Short:         "An in-memory inventory and sales ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests and the shell to keep an existing state
			if itemStore != nil && salesLedger != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			handler, err := newLogHandler(os.Stderr, viper.GetString("log-level"), viper.GetString("log-format"))
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(handler))

			s := store.NewInMemoryStore()
			itemStore = s
			salesLedger = ledger.NewSalesLedger(s)
			return nil
		},
	}

	itemStore   domain.ItemStore
	salesLedger domain.Ledger

	stdin = bufio.NewReader(os.Stdin)
)

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug|info|warn|error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text|json")
	rootCmd.PersistentFlags().Uint64("reorder-threshold", 5, "default threshold for reorder")
	rootCmd.PersistentFlags().Int("top-limit", 10, "default number of entries for top")

	for _, key := range []string{"config", "log-level", "log-format", "reorder-threshold", "top-limit"} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", key, err))
		}
	}
	viper.SetEnvPrefix("INVENTORY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode; state lives as long as the shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			for {
				fmt.Print("inventory> ")
				line, err := stdin.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
				resetFlags(rootCmd)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)
}

func newLogHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "", "info":
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level: %s", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", format)
	}
}

// resetFlags puts the local flags of every subcommand back to their defaults
// so one shell line does not leak values or Changed state into the next.
// Flags declared on the root, such as reorder-threshold, are kept.
func resetFlags(cmd *cobra.Command) {
	for _, c := range cmd.Commands() {
		c.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
		resetFlags(c)
	}
}

func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid item id %q", arg)
	}
	return id, nil
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func printItems(items []domain.Item, output string) {
	if output == "json" {
		printJSON(items)
		return
	}
	for _, it := range items {
		fmt.Printf("%d | %s | %d | %.2f\n", it.ID, it.Name, it.Quantity, it.Price)
	}
}

func Execute() error {
	return rootCmd.Execute()
}
