package main

import "github.com/bdentino/compose-addons/internal/cmd"

func main() {
	cmd.Execute()
}
