// Command designkit prints and exports design tokens and themes.
package main

import "github.com/opencode-ai/designkit/internal/cli"

func main() {
	cli.Execute()
}
