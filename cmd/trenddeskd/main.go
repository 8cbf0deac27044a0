package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// .env is optional; deployments configure through TRENDDESK_* vars
	_ = godotenv.Load()

	var root = &cobra.Command{Use: "trenddeskd"}

	root.AddCommand(serveCMD())
	if err := root.Execute(); err != nil {
		log.Fatalf("trenddeskd: %v", err)
	}
}
