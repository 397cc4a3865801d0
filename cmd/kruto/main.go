package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/reoring/kruto"
	"github.com/reoring/kruto/codec"
	"github.com/reoring/kruto/types"
)

var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, errUsage) {
		usage()
		os.Exit(2)
	}
	if err != nil {
		fatalf("kruto: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "kruto CLI\n\nUsage:\n  kruto types\n  kruto schema --type Update\n  kruto decode --type Update [--strict] file.json|-\n\nNotes:\n  - decode prints the resolved variant on the first line, then the value re-encoded.")
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}
	switch args[0] {
	case "types":
		for _, name := range types.NodeNames() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	case "schema":
		return schemaCmd(args[1:], stdout)
	case "decode":
		return decodeCmd(args[1:], stdin, stdout)
	default:
		return errUsage
	}
}

func schemaCmd(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	typeName := fs.StringP("type", "t", "Update", "top-level type to export")
	if err := fs.Parse(args); err != nil {
		return err
	}
	n, err := lookup(*typeName)
	if err != nil {
		return err
	}
	s, err := kruto.JSONSchema(n)
	if err != nil {
		return err
	}
	b, err := codec.MarshalIndent(s)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s\n", b)
	return err
}

func decodeCmd(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	typeName := fs.StringP("type", "t", "Update", "top-level type to decode as")
	strict := fs.Bool("strict", false, "fail instead of keeping unmatched values raw")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}
	n, err := lookup(*typeName)
	if err != nil {
		return err
	}

	var data []byte
	if path := fs.Arg(0); path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	var opts []kruto.DecodeOption
	if *strict {
		opts = append(opts, kruto.Strict())
	}
	res, err := kruto.DecodeJSON(context.Background(), n, data, opts...)
	if err != nil {
		return err
	}

	var wire any
	if res.Raw() {
		wire, err = kruto.EncodeValue(res.Value)
	} else {
		wire, err = kruto.Encode(n, res.Value)
	}
	if err != nil {
		return err
	}
	b, err := codec.MarshalIndent(wire)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s", types.VariantName(res.Value))
	if res.Fallbacks > 0 {
		fmt.Fprintf(stdout, " (%d raw)", res.Fallbacks)
	}
	_, err = fmt.Fprintf(stdout, "\n%s\n", b)
	return err
}

func lookup(name string) (kruto.Node, error) {
	n, ok := types.NodeByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown type %q (known: %s)", name, strings.Join(types.NodeNames(), ", "))
	}
	return n, nil
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
