package main

import "github.com/mcoot/termsweeper/internal/cli"

func main() {
	cli.Execute()
}
