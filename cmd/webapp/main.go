//go:build js && wasm
// +build js,wasm

package main

import (
	"github.com/dadosjusbr/site/webapp"
)

func main() {
	// This main function is for the WASM build only. Start registers the
	// same routes the server prerenders and mounts the App in the browser.
	webapp.Start()
}
