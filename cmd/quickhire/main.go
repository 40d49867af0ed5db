package main

import (
	"fmt"
	"os"

	"github.com/quickhirelabor/quickhire/cmd/quickhire/commands"

	// Database drivers register themselves on import.
	_ "github.com/quickhirelabor/quickhire/internal/data/mysql"
	_ "github.com/quickhirelabor/quickhire/internal/data/postgres"
	_ "github.com/quickhirelabor/quickhire/internal/data/sqlite"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
