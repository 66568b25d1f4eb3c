package main

import "github.com/arloliu/colf/cmd/colf/cmd"

func main() {
	cmd.Execute()
}
