package main

import "github.com/sarchlab/cachesim/cmd"

func main() {
	cmd.Execute()
}
