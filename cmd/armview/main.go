package main

import "github.com/OpenTraceLab/OpenTraceCortex/cmd/armview/cmd"

func main() {
	cmd.Execute()
}
