package main

import "github.com/himekoshi/github-wrapped/cmd"

func main() {
	cmd.Execute()
}
