// Penguin is a save editor for New Super Mario Bros. Wii.
package main

import "penguin/cli"

func main() {
	cli.Execute()
}
