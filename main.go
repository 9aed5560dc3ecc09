// Package main is the entry point for the lol-predictor CLI, which collects
// League of Legends match timelines and trains a win classifier on the
// first fifteen minutes of play.
package main

import "lol-predictor/cmd"

func main() {
	cmd.Execute()
}
