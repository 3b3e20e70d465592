package web

import "embed"

// Templates holds the page layouts, partials, pages, and printable report pages.
//
//go:embed templates/**/*.html
var Templates embed.FS

// Static holds the stylesheet served under /static.
//
//go:embed static/**/*
var Static embed.FS
