package main

import "github.com/vdimitrov/stgc/cmd"

func main() {
	cmd.Execute()
}
