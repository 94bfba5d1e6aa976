package main

import "github.com/theirongolddev/pdash/cmd"

func main() {
	cmd.Execute()
}
