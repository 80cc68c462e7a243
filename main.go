package main

import "github.com/philipparndt/geomeasure/cmd"

func main() {
	cmd.Execute()
}
