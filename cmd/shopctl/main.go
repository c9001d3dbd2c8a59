package main

import (
	"os"

	"github.com/ecomdemo/shopctl/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
