package main

import "github.com/pfrederiksen/county-brands/internal/cli"

func main() {
	cli.Execute()
}
