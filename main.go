package main

import "github.com/flowtaskapp/flowtask/cmd"

func main() {
	cmd.Execute()
}
