// Command compress compresses a file with static arithmetic coding and
// prints compression statistics.
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

	stats, err := arit.Compress(input, output)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	fmt.Println(stats)
}
