//go:build js && wasm

// Command motion is the browser runtime for page animations. It is built to
// static/motion.wasm and mounts every data-scene section of the page.
package main

import (
	"log"

	"github.com/dhruvvakharia/portfolio/internal/browser"
	"github.com/dhruvvakharia/portfolio/internal/scene"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("motion: ")

	doc := browser.Current()
	clock := browser.EventLoop()
	page := scene.Mount(doc, clock)
	log.Printf("mounted %v", page.Mounted())

	doc.OnPopState(func(path string) { page.Navigate(path) })
	doc.OnPageShow(func() {
		page.Unmount()
		page = scene.Mount(doc, clock)
	})

	select {}
}
