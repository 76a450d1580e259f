package main

import (
	"os"

	"github.com/hkwire/hkctl/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
