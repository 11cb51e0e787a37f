//go:build !js

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "modelviewer runs in the browser: build with GOOS=js GOARCH=wasm, or use cmd/viewerctl")
	os.Exit(1)
}
