package main

import (
	"bytes"
	"fmt"
	"go/format"
	"math"
	"os"
	"strconv"
)

func writeHeader(buf *bytes.Buffer, source string) {
	fmt.Fprintf(buf, "// Code generated by cmd/gendata from %s. DO NOT EDIT.\n\n", source)
	fmt.Fprintf(buf, "package data\n\n")
}

// writeGoFile gofmt-formats src and writes it to path.
func writeGoFile(path string, src []byte) error {
	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// goFloat renders whole numbers without an exponent so costs stay readable.
func goFloat(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func goStrings(ss []string) string {
	var buf bytes.Buffer
	buf.WriteString("[]string{")
	for i, s := range ss {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.Quote(s))
	}
	buf.WriteString("}")
	return buf.String()
}
