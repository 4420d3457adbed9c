package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

type symbol struct {
	Name   string
	Symbol string
	Kind   string
	Value  int
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "symbol", "symbol_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of symbol objects
	syms, err := convertDataToSymbols(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the symbol objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "symbol", "symbol_data.tmpl"), syms)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("symbol_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

// kindOrder fixes the order of the generated entries.
// Digits come before units, so the Unit constants start at 十.
var kindOrder = map[string]int{
	"zero":  0,
	"digit": 1,
	"intra": 2,
	"large": 3,
	"small": 4,
}

func convertDataToSymbols(data [][]string) ([]symbol, error) {
	// Convert the CSV records to symbol objects
	syms := []symbol{}
	for _, rec := range data {
		if _, ok := kindOrder[rec[2]]; !ok {
			return nil, fmt.Errorf("unknown kind %q of symbol %q", rec[2], rec[1])
		}
		v, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("value of symbol %q: %w", rec[1], err)
		}
		sym := symbol{
			Name:   rec[0],
			Symbol: rec[1],
			Kind:   rec[2],
			Value:  v,
		}
		syms = append(syms, sym)
	}

	// Sort by kind, then by magnitude within the kind
	less := func(i, j int) bool {
		a, b := syms[i], syms[j]
		if kindOrder[a.Kind] != kindOrder[b.Kind] {
			return kindOrder[a.Kind] < kindOrder[b.Kind]
		}
		if a.Kind == "small" {
			return a.Value > b.Value
		}
		return a.Value < b.Value
	}
	sort.SliceStable(syms, less)
	return syms, nil
}

func generateGoCode(filename string, syms []symbol) ([]byte, error) {
	// Create a new template object from the template file
	fmap := template.FuncMap{
		"title": func(s string) string {
			return strings.ToUpper(s[:1]) + s[1:]
		},
		"isUnit": func(kind string) bool {
			return kind == "intra" || kind == "large" || kind == "small"
		},
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, syms)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
