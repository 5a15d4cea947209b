// Command techjobs serves the tech jobs site and runs its maintenance tasks.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
