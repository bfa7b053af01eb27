// Command nbfxdump parses an MC-NBFX document and prints its tree.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sleepyowl-go/nbfx"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: nbfxdump <file>\n")
	os.Exit(1)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
	}

	root, err := nbfx.ParseFile(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("nbfxdump: parse failed")
	}

	dump(root, 0)
}

func dump(el *nbfx.Element, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s<%s>", indent, el.Name.String())
	for _, a := range el.Attributes {
		fmt.Printf(" %s=%q", a.Name.String(), a.Value.ToString())
	}
	if v := el.Value.ToString(); v != "" {
		fmt.Printf(" = %s", v)
	}
	fmt.Println()
	for _, c := range el.Children {
		dump(c, depth+1)
	}
}
