package main

import (
	"os"

	"github.com/scan-io-git/sarif2md/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
