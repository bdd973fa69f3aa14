// Package pagesift extracts structured records from unstructured web
// pages. A pipeline fetches raw markup through a pluggable scraping
// backend, normalizes it to plain text, splits the text into bounded
// chunks, parses each chunk independently through a pluggable LLM
// backend, and merges the per-chunk results into one deduplicated,
// provenance-tracked dataset that materializes as a header/row table
// for export.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// genai/, openai/).
package pagesift
