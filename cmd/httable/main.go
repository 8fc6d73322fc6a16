// Command httable converts and inspects tabular Hi-C contact data:
// short/interval text tables, and .hic/.cool containers through their
// external tools.
package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
