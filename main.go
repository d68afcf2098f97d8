package main

import "slotgrid/cmd"

func main() {
	cmd.Execute()
}
