package main

import "chartmenu/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
