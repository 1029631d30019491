// Package views holds the server-rendered pages as templ components.
//
// Pages are written in .templ files; the matching _templ.go files are produced
// by `templ generate` and committed alongside them.
package views
