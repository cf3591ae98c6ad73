package main

import "gwctl/cmd"

func main() {
	cmd.Execute()
}
