// Package datahunter provides the command-line interface: text, file and
// directory scans, model training and inspection, and config helpers.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/datahunter/datahunter/cmd/datahunter"
//	func main() { datahunter.Execute() }
package datahunter
