package main

import (
	"fmt"
	"log"
	"os"

	"keccak-hash-demo/digest"
)

// One-shot variant of the interactive demo: hashes the UTF-8 bytes of
// the single argument and prints the digest, nothing else.
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("Usage: go run hash.go <text>")
	}

	fmt.Println(digest.Keccak256Hex([]byte(os.Args[1])))
}
