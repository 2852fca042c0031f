package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"keccak-hash-demo/digest"
	"keccak-hash-demo/screen"
)

// run reads one line from in, clears the screen, and writes the raw
// input followed by its Keccak-256 hex digest to out. Returns an error
// only when no line could be read.
func run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Keccak-256 hash demo")
	fmt.Fprintln(out, "+++++++++++++++++++++++++++++++++++++")
	fmt.Fprint(out, "Enter your mother's maiden name: ")

	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		return errors.New("input closed before a line was read")
	}
	rec := digest.NewRecord(sc.Text())

	screen.Clear(out)
	fmt.Fprintf(out, "Mother's maiden name before hashing:\n%s\n", rec.Text)
	fmt.Fprintf(out, "Mother's maiden name after hashing:\n%s\n", rec.DigestHex)
	return nil
}

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
