// Command strseg splits text on regex delimiters and extracts delimited
// regions, honouring escape characters.
//
// Usage:
//
//	strseg esplit ',' --text 'a\,b,c'
//	echo "x 'a' 'b'" | strseg between "'" "'" --format json
//	strseg split ';' --config strseg.yaml --section csv --save
package main

import (
	"os"

	"github.com/coregx/strseg/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
