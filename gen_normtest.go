//go:build generate

// This program downloads the normalization conformance test data matching
// the Unicode version of the normalization tables into the testdata
// directory. The conformance test is skipped while the file is missing.

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const target = "testdata/NormalizationTest.txt"

var testURL = fmt.Sprintf("https://www.unicode.org/Public/%s/ucd/NormalizationTest.txt", norm.Version)

func main() {
	log.SetPrefix("gen_normtest: ")
	log.SetFlags(0)

	data, err := fetch()
	if err != nil {
		log.Fatal(err)
	}
	if err := check(data); err != nil {
		log.Fatal(err)
	}

	log.Printf("Writing to %s", target)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		log.Fatal(err)
	}
}

func fetch() ([]byte, error) {
	log.Printf("Downloading %s", testURL)
	res, err := http.Get(testURL)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", testURL, res.Status)
	}
	return io.ReadAll(res.Body)
}

// check makes sure every test line carries the five columns the
// conformance test expects.
func check(data []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	num, tests := 0, 0
	for scanner.Scan() {
		num++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "@") {
			continue
		}
		if fields := strings.Split(line, ";"); len(fields) < 5 {
			return fmt.Errorf("line %d: %d columns", num, len(fields))
		}
		tests++
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if tests == 0 {
		return errors.New("no test cases found")
	}
	log.Printf("Found %d test cases", tests)
	return nil
}
