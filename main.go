package main

import "github.com/itsmostafa/mdsummary/cmd"

func main() {
	cmd.Execute()
}
