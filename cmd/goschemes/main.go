package main

import "github.com/reoring/goschemes/cmd/goschemes/cmd"

func main() {
	cmd.Execute()
}
