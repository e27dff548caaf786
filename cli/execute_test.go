package cli

import (
	"testing"
)

func TestExecuteWrapper(t *testing.T) {
	defer resetCLI()
	// let PersistentPreRunE build a fresh store and ledger
	itemStore = nil
	salesLedger = nil
	rootCmd.SetArgs([]string{"add", "--name", "ExecTest", "--quantity", "1", "--price", "1"})
	if _, err := captureOutput(Execute); err != nil {
		t.Fatalf("Execute wrapper failed: %v", err)
	}
	if itemStore == nil || salesLedger == nil {
		t.Fatal("expected Execute to initialize state")
	}
}
