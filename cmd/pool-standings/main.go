package main

import "github.com/pfrederiksen/pool-standings/internal/cli"

func main() {
	cli.Execute()
}
