package main

import "github.com/t20labs/tip20cli/cmd"

func main() {
	cmd.Execute()
}
