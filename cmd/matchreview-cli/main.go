package main

import "matchreview/cmd/matchreview-cli/cmd"

func main() {
	cmd.Execute()
}
