package main

import "github.com/theirongolddev/spendboard/cmd"

func main() {
	cmd.Execute()
}
