package main

import "github.com/strsift/strsift/cmd/strsift"

func main() { strsift.Execute() }
