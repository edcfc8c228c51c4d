package main

import "github.com/termdock/termdock/internal/cli"

func main() {
	cli.Run()
}
