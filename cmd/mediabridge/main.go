// filepath: cmd/mediabridge/main.go
package main

import "mediabridge/internal/cli"

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
