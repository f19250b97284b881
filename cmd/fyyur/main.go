package main

import "fyyur/cmd/fyyur/command"

func main() {
	command.Execute()
}
