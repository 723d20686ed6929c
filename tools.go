//go:build tools
// +build tools

package main

// stringer generates the String methods for the enum types in lexer/ and eval/.
import _ "golang.org/x/tools/cmd/stringer"
