package main

import (
	"os"

	"reviews_carousel/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
