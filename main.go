package main

import "github.com/leddie24/neetcode-tracker/cmd"

func main() {
	cmd.Execute()
}
