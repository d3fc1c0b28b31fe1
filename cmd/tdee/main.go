package main

import "github.com/blaisecz/energy-tracker/internal/cli"

func main() {
	cli.Execute()
}
