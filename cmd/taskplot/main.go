// cmd/taskplot/main.go
package main

import (
	cmd "github.com/mwiater/taskplot/internal/cli"
)

// main starts the taskplot CLI by delegating to the cobra root command.
func main() {
	cmd.Execute()
}
