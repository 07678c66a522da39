package main

import "filestore/cmd"

func main() {
	cmd.Execute()
}
