package main

import "github.com/lfmcastro/epggrid/cmd"

func main() {
	cmd.Execute()
}
