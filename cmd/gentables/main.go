//go:build generate

// This program regenerates tables_name_blob.go's embedded name blob from
// the Unicode Character Database's UnicodeData.txt.
//
//go:generate go run main.go

package main

import (
	"bufio"
	"bytes"
	"compress/flate"
	"errors"
	"fmt"
	"go/format"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

const ucdURL = `https://www.unicode.org/Public/15.1.0/ucd/UnicodeData.txt`

func main() {
	log.SetPrefix("gentables: ")
	log.SetFlags(0)

	records, err := parse()
	if err != nil {
		log.Fatal(err)
	}

	src, err := render(records)
	if err != nil {
		log.Fatal(err)
	}

	formatted, err := format.Source([]byte(src))
	if err != nil {
		log.Fatal("gofmt:", err)
	}

	log.Print("Writing to tables_name_blob.go")
	if err := os.WriteFile("tables_name_blob.go", formatted, 0644); err != nil {
		log.Fatal(err)
	}
}

type nameRecord struct {
	codePoint uint32
	name      string
}

func parse() ([]nameRecord, error) {
	log.Printf("Parsing %s", ucdURL)
	res, err := http.Get(ucdURL)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var records []nameRecord
	scanner := bufio.NewScanner(res.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) < 2 {
			continue
		}
		cp, err := strconv.ParseUint(fields[0], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("bad code point %q: %v", fields[0], err)
		}
		name := fields[1]
		// First/Last range markers and algorithmically-named ideographs are
		// handled by name.go's algorithmicName, not the static blob.
		if strings.HasSuffix(name, ", First>") || strings.HasSuffix(name, ", Last>") {
			continue
		}
		if strings.HasPrefix(name, "<") {
			continue
		}
		records = append(records, nameRecord{codePoint: uint32(cp), name: name})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no name records parsed")
	}

	sort.Slice(records, func(i, j int) bool { return records[i].codePoint < records[j].codePoint })
	return records, nil
}

func render(records []nameRecord) (string, error) {
	var raw strings.Builder
	for _, r := range records {
		fmt.Fprintf(&raw, "%X;%s;", r.codePoint, r.name)
	}

	var compressed bytes.Buffer
	w, err := flate.NewWriter(&compressed, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := w.Write([]byte(raw.String())); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `// Code generated via go generate from cmd/gentables. DO NOT EDIT.

package unicorn

// nameBlobDeflated holds a DEFLATE-compressed sequence of "hex;NAME;"
// records taken from
// %s
// on %s. See https://www.unicode.org/license.html for the Unicode
// license agreement.
var nameBlobDeflated = []byte(%q)

var nameBlobDecompressedSize = %d
`, ucdURL, time.Now().Format("January 2, 2006"), compressed.String(), raw.Len())

	return buf.String(), nil
}
