// Command libsketch builds sketch as a C shared library:
//
//	go build -buildmode=c-shared -o libsketch.so ./cmd/libsketch
//
// The exported functions are declared in export.go and require cgo.
package main

func main() {}
