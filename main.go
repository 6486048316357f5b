package main

import "github.com/quickbite/quickbite/cmd"

func main() {
	cmd.Execute()
}
