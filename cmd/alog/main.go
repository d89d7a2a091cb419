package main

import "github.com/gajare/accident-logs/internal/cli"

func main() {
	cli.Execute()
}
