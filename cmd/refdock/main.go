package main

import (
	"os"

	"github.com/refdock/refdock/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
