// Package main is the entry point for the dugout CLI tool, which loads
// GameChanger season exports and computes player stats and coaching feedback.
package main

import "github.com/nmspartans/dugout/cmd"

func main() {
	cmd.Execute()
}
