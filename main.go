package main

import "github.com/gnames/kvdata/cmd"

func main() {
	cmd.Execute()
}
