package main

import "github.com/mabhi256/dsaviz/cmd"

func main() {
	cmd.Execute()
}
