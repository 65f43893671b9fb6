package main

import "github.com/vantrou/memnode/cmd"

func main() {
	cmd.Execute()
}
