package main

import (
	"github.com/custodia-labs/foxfind/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
