// Command decompress restores a file compressed by the compress command.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	arit "github.com/rodrigoabreu22/TAI-Project-1"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <input_file> <output_file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	input, output := flag.Arg(0), flag.Arg(1)
	if input == "" || output == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := arit.Decompress(input, output); err != nil {
		log.Fatalf("%+v", err)
	}
}
