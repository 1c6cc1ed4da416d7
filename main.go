package main

import "github.com/pathwing/pathwing/cmd"

func main() {
	cmd.Execute()
}
