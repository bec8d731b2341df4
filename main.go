package main

import "relic-manager/cmd"

func main() {
	cmd.Execute()
}
