// Command dnscodec is a small demonstration CLI for the wire codec: with
// -decode it decodes a hex-encoded DNS message from stdin and prints a
// human-readable summary; with -build it builds an A/IN query for -qname
// and prints its hex encoding.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kdns/dnswire/internal/dns/codec"
	"github.com/kdns/dnswire/internal/dns/common/log"
	"github.com/kdns/dnswire/internal/dns/config"
	"github.com/kdns/dnswire/internal/dns/domain"
	"github.com/kdns/dnswire/internal/dns/types"
)

const appName = "dnscodec"

func main() {
	decodeMode := flag.Bool("decode", false, "decode a hex message from stdin and print it")
	tcp := flag.Bool("tcp", false, "the message carries a 2-byte TCP length prefix")
	buildMode := flag.Bool("build", false, "build a minimal A/IN query for -qname and print its hex encoding")
	qname := flag.String("qname", "", "question name for -build")
	flag.Parse()

	opts, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: configuration error: %v\n", appName, err)
		os.Exit(1)
	}

	switch {
	case *buildMode:
		if err := runBuild(*qname, *opts); err != nil {
			log.Fatal(map[string]any{"error": err}, "build failed")
		}
	case *decodeMode:
		if err := runDecode(*tcp); err != nil {
			log.Fatal(map[string]any{"error": err}, "decode failed")
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runBuild(qname string, opts config.CodecOptions) error {
	if qname == "" {
		return fmt.Errorf("-qname is required with -build")
	}
	header := domain.NewQueryHeader(1, true)
	questions := []domain.Question{domain.NewQuestion(qname, types.A, types.RRClassIN)}
	msg, err := domain.BuildMessage(header, questions, nil, nil, nil, nil)
	if err != nil {
		return err
	}

	wireBytes, err := codec.EncodeWithOptions(msg, opts)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(wireBytes))
	return nil
}

func runDecode(tcp bool) error {
	input, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	raw, err := hex.DecodeString(trimNewline(string(input)))
	if err != nil {
		return fmt.Errorf("decoding hex: %w", err)
	}

	var msg domain.Message
	if tcp {
		msg, err = codec.DecodeTCP(raw)
	} else {
		msg, err = codec.Decode(raw)
	}
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r' || s[len(s)-1] == ' ') {
		s = s[:len(s)-1]
	}
	return s
}
