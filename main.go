package main

import "github.com/datahunter/datahunter/cmd/datahunter"

func main() { datahunter.Execute() }
