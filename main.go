package main

import "tikictx/cmd"

func main() {
	cmd.Execute()
}
