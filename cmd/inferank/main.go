// Package main provides the entry point for the inferank CLI.
//
// inferank runs two numeric exercises: exact inference of gene and trait
// probabilities over a family pedigree, and PageRank over a directory of
// linked HTML pages, estimated both by sampling and by iteration.
//
// Usage:
//
//	inferank heredity family.csv
//	inferank pagerank corpus/
//
// See --help for all available options.
package main

// main is the entry point for inferank.
func main() {
	Execute()
}
