package main

import "hexview/internal/cli"

func main() {
	cli.Execute()
}
