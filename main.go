package main

import "github.com/disruptops/cognitocache/cmd"

func main() {
	cmd.Execute()
}
