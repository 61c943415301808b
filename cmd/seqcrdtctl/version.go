package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the seqcrdtctl version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Println(buildVersion)
			return nil
		},
	}
}
