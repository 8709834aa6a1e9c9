package main

import "github.com/jfmyers9/spotweb/cmd"

func main() {
	cmd.Execute()
}
