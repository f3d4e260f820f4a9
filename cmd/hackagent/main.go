package main

import "github.com/NobPolish/hackagent/internal/cli"

func main() {
	cli.Execute()
}
