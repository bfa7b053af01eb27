// Command nbfxgen builds a small sample Element tree and serializes it to
// MC-NBFX.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sleepyowl-go/nbfx"
)

func main() {
	out := flag.String("o", "", "output file (default: stdout)")
	sortMembers := flag.Bool("sort", false, "sort children by local name before serializing")
	flag.Parse()

	root := sampleTree()

	data, err := nbfx.SerializeToBytes(root, *sortMembers)
	if err != nil {
		log.Fatal().Err(err).Msg("nbfxgen: serialize failed")
	}

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal().Err(err).Msg("nbfxgen: write failed")
	}
	fmt.Fprintf(os.Stderr, "nbfxgen: wrote %d bytes to %s\n", len(data), *out)
}

// sampleTree builds a small envelope resembling a SOAP request, exercising
// strings, an integer, and a DateTime.
func sampleTree() *nbfx.Element {
	envelope := nbfx.NewElement(nbfx.QName("s", "Envelope"))
	envelope.AddAttribute(nbfx.Attr{
		Name:  nbfx.QName("", "xmlns"),
		Value: nbfx.StringValue("http://www.w3.org/2003/05/soap-envelope"),
	})

	body := nbfx.NewElement(nbfx.QName("s", "Body"))
	envelope.AddChild(body)

	request := nbfx.NewElement(nbfx.QName("", "GetStatusRequest"))
	body.AddChild(request)

	id := nbfx.NewElement(nbfx.QName("", "Id"))
	id.Value = nbfx.Int64Value(42)
	request.AddChild(id)

	issued := nbfx.NewElement(nbfx.QName("", "Issued"))
	issued.Value = nbfx.DateTimeValue(time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC))
	request.AddChild(issued)

	return envelope
}
