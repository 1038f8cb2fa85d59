package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectfour/internal/variant"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available boards",
	Long:  `Shows every board variant that can be played.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := variant.List()

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Title", "Size")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-----", "----")

	for _, v := range variants {
		marker := ""
		if v.ID == cfg.Variant {
			marker = "  (default)"
		}
		fmt.Printf("  %-*s  %-8s  %s%s\n", maxIDLen, v.ID, v.Title, v.Size(), marker)
	}

	fmt.Println()
	fmt.Println("Run 'connectfour play --variant <id>' to play a board.")
}
