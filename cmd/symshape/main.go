package main

import (
	"os"

	"github.com/funvibe/symshape/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
