package main

import "mofprune/internal/cli"

func main() {
	cli.Execute()
}
