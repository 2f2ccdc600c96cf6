package main

import (
	"fmt"
	"os"

	"polkameta.dev/framemeta/metacid"
	"polkameta.dev/framemeta/metadata"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: metainfo <metadata.json>")
		os.Exit(2)
	}
	path := os.Args[1]
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read: %v\n", err)
		os.Exit(1)
	}
	p, err := metadata.FromJSON(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse: %v\n", err)
		os.Exit(1)
	}
	c, err := metacid.FromDocument(*p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cid: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("version: V%d\n", p.Metadata.Version())
	fmt.Printf("cid: %s\n", c)
	fmt.Println("pallets:")
	for _, name := range p.Metadata.Pallets() {
		fmt.Printf("  %s\n", name)
	}
}
