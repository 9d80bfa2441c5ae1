package main

import "steam-notion-sync/cmd"

func main() {
	cmd.Execute()
}
