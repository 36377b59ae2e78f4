package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxroom/voxroom-backend/backendservice"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "voxroom-backend",
		Short: "Backend service for VoxRoom real-time media rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			return backendservice.Run()
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return backendservice.Run()
		},
	}
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
