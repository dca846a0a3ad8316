// abidump converts between an ABI's binary and JSON encodings of a
// single declared type, given the ABI description that governs it.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/indexsupply/chainabi/abi"
	"github.com/indexsupply/chainabi/abi/schema"
	"github.com/indexsupply/chainabi/internal/wlog"
	"github.com/indexsupply/chainabi/sax"
)

var (
	abiFile  = flag.String("abi", "", "path to the ABI description `file`")
	typeName = flag.String("type", "", "ABI type name to encode/decode")
	decode   = flag.Bool("d", false, "decode hex on stdin to JSON instead of encoding")
	input    = flag.String("i", "", "input `file` (default stdin)")
)

func check(err error) {
	if err != nil {
		slog.Error("abidump", "type", *typeName, "error", err)
		os.Exit(1)
	}
}

func loadContract(path string) (*schema.Contract, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d schema.Descriptor
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return schema.Resolve(&d)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return os.ReadFile("/dev/stdin")
	}
	return os.ReadFile(path)
}

func main() {
	lh := wlog.New(os.Stderr, nil)
	slog.SetDefault(slog.New(lh))

	flag.Parse()
	if *abiFile == "" {
		check(errors.New("missing -abi (ABI description file) arg"))
	}
	if *typeName == "" {
		check(errors.New("missing -type (ABI type name) arg"))
	}

	contract, err := loadContract(*abiFile)
	check(err)

	data, err := readInput(*input)
	check(err)

	if *decode {
		bin, err := hex.DecodeString(strings.TrimSpace(string(data)))
		check(err)
		sink := sax.NewJSONSink()
		check(abi.Decode(contract, *typeName, bin, sink))
		fmt.Println(string(sink.Bytes()))
		return
	}

	src := sax.NewJSONSource(strings.NewReader(string(data)))
	bin, err := abi.Encode(contract, *typeName, src)
	check(err)
	fmt.Println(hex.EncodeToString(bin))
}
