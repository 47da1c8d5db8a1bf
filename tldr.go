// Package tldr extracts the body text of web articles and produces extractive
// summaries: a subset of the original sentences, chosen by word-frequency
// scoring, kept in their original order.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package tldr
