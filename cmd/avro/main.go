package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmosorast/avro"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "canon":
		canonCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "avro CLI\n\nUsage:\n  avro canon schema.json|schema.yaml [more files...]\n\nNotes:\n  - canon parses each schema definition and prints its canonical JSON form.")
}

func canonCmd(args []string) {
	fs := flag.NewFlagSet("canon", flag.ExitOnError)
	_ = fs.Parse(args)
	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		os.Exit(2)
	}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			fatalf("reading %s: %v", file, err)
		}
		s, err := parseByExt(file, data)
		if err != nil {
			fatalf("%s: %v", file, err)
		}
		fmt.Println(s)
	}
}

func parseByExt(file string, data []byte) (*avro.Schema, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return avro.ParseSchemaYAML(data)
	default:
		return avro.ParseSchema(data)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
