// Package main provides the entry point for the prattle CLI.
//
// prattle builds an n-gram frequency model from a text file and prints
// newly generated text that imitates the corpus.
//
// Usage:
//
//	prattle <input file> <word count>
//	prattle stats <input file>
//
// See --help for all available options.
package main

// main is the entry point for prattle.
func main() {
	Execute()
}
