// Package content holds the compiled-in copy of the site: the project list,
// the home page sections and the contact details. Nothing here changes at
// runtime; every accessor hands out copies.
package content

import "errors"

// ErrNotFound is returned when a lookup by id has no match.
var ErrNotFound = errors.New("content: not found")

// Site-wide metadata used by the page shell.
const (
	Owner       = "Dhruv Vakharia"
	Initials    = "DV"
	Role        = "Full Stack Developer"
	Title       = Owner + " | " + Role
	Description = "Full Stack Developer specializing in modern web applications, React, Next.js, Node.js, and cloud solutions. Let's build something amazing together."
)

// Keywords are the meta keywords of every page.
func Keywords() []string {
	return []string{"Full Stack Developer", "Web Developer", "React", "Next.js", "Node.js", "TypeScript", "Portfolio"}
}
