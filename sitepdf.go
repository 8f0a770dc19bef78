// Package sitepdf crawls a website breadth-first from a seed URL, extracts
// the readable main content of each page as typed text blocks, and lays the
// accumulated pages out into a single paginated document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, readability/, fpdf/).
package sitepdf
