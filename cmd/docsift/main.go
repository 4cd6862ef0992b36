package main

import (
	"docsift/cmd/docsift/cmd"
)

func main() {
	cmd.Execute()
}
