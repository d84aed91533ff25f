package strsift

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strsift/strsift/internal/types"
)

func init() {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List classification categories",
		Run: func(_ *cobra.Command, _ []string) {
			for _, c := range types.Categories() {
				fmt.Println(c)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
