package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dragfire/maria/pkg/translator"
)

func main() {
	inPath := flag.String("in", "", "read source from a file instead of stdin")
	program := flag.Bool("program", false, "translate a full program instead of a single assignment")
	flag.Parse()

	var in io.Reader = os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	t, err := translator.New(in, os.Stdout)
	if err != nil {
		fail(err)
	}

	if *program {
		if err := t.Program(); err != nil {
			fail(err)
		}
		return
	}

	if err := t.Assignment(); err != nil {
		fail(err)
	}
	if t.Look() != '\n' {
		fail(translator.Expected("Newline"))
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "translate error:", err)
	os.Exit(1)
}
