package main

import "github.com/Tiliavir/rce/cmd"

func main() {
	cmd.Execute()
}
