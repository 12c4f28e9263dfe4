package main

import (
	"bufio"
	"io"
)

// scanLines sends every line of r to lines and closes it at end of input.
func scanLines(r io.Reader, lines chan<- string) error {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
	return scanner.Err()
}
