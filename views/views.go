// Package views embeds the HTML templates and the stylesheet.
package views

import "embed"

//go:embed *.html layouts/*.html static/*
var Files embed.FS
