package main

import (
	"os"
)

func main() {
	if err := RootCommand(teaRunner{}).Execute(); err != nil {
		os.Exit(1)
	}
}
