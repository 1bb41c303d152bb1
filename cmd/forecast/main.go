package main

import (
	"github.com/planwise/forecast/internal/cli"
)

func main() {
	cli.Execute()
}
