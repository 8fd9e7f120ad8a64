// Package pressgate fetches remote web documents, extracts their main
// readable article content, and classifies whether the content is
// inaccessible due to a paywall or subscription gate. It serves
// content-mirroring and archival pipelines that need clean article text
// plus a reliable signal of whether a fetch yielded genuine content or a
// gated response.
//
// This package contains domain types, interfaces, and the pure decision
// helpers (domain denylist, phrase scanning, content normalization)
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// readability/, sqlite/).
package pressgate
