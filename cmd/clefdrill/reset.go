package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resetCmd)
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the mistake ledger",
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	store, led, err := openData()
	if err != nil {
		return err
	}
	defer store.Close()

	n := led.Len()
	led.Reset()
	fmt.Printf("Cleared %d tracked notes.\n", n)
	return nil
}
