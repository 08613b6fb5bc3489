package main

import "github.com/mouse-blink/fromback/cmd"

func main() {
	cmd.Execute()
}
