package main

import "github.com/tzhen/go-cobracolor/cmd/colorcat/cmd"

func main() {
	cmd.Execute()
}
