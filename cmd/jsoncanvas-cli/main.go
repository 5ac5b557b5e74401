package main

import "jsoncanvas/cmd/jsoncanvas-cli/cmd"

func main() {
	cmd.Execute()
}
