package main

import "github.com/naka-gawa/npm-pkg-stats/cmd"

func main() {
	cmd.Execute()
}
