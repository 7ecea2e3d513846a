// Command fmatrix builds small float32 matrices from flags, runs one
// operation and prints the result.
//
//	fmatrix identity 3
//	fmatrix multiply --rows 2 --cols 2 --data 1,2,3,4 --rows2 2 --cols2 2 --data2 5,6,7,8
package main

import (
	"os"

	"github.com/katalvlaran/fmatrix/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
