// Package mdxport migrates pages of a hosted site into local MDX files.
// It collects the links found under one navigation subtree of a page, then
// fetches each linked page, extracts a single content region, converts it
// to Markdown and writes it with generated front matter.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, rod/).
package mdxport
