// The main package for the logofetch executable.
package main

import (
	"github.com/logofetch/logofetch/cmd"
)

func main() {
	cmd.Execute()
}
