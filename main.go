package main

import "github.com/wanderwallet/wanderwallet/cmd"

func main() {
	cmd.Execute()
}
