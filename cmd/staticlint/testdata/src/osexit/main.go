package main

import (
	"fmt"
	"os"
)

func main() {
	defer fmt.Println("done")

	if len(os.Args) > 5 {
		os.Exit(2) // want "avoid direct os.Exit call in main function of main package"
	}

	func() {
		os.Exit(0)
	}()

	exit(1)
}

func exit(code int) {
	os.Exit(code)
}
