package main

import "blogapi/cmd/blogctl/commands"

func main() {
	commands.Execute()
}
