package main

import "github.com/tally-finance/backend/cmd"

func main() {
	cmd.Execute()
}
