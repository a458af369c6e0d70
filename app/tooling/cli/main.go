// This program provides a command line client for the blockchain node.
package main

import "github.com/minichain/minichain/app/tooling/cli/cmd"

func main() {
	cmd.Execute()
}
