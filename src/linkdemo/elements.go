package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// loadElements reads whitespace separated elements from filename, keeping
// file order.
func loadElements(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening element file %q", filename)
	}
	defer file.Close()

	var elements []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		elements = append(elements, strings.Fields(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading element file %q", filename)
	}
	return elements, nil
}

// gatherElements returns the positional elements followed by those read from
// the --file flag, if set.
func gatherElements(args []string, filename string) ([]string, error) {
	elements := append([]string{}, args...)
	if filename == "" {
		return elements, nil
	}
	fromFile, err := loadElements(filename)
	if err != nil {
		return nil, err
	}
	return append(elements, fromFile...), nil
}
