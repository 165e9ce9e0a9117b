// Package text measures quote text for dimension layout.
//
// The measuring pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight font instance at a specific size
//
// Advances come from HarfBuzz shaping (go-text/typesetting), so kerning
// and ligatures are accounted for; vertical metrics come from
// golang.org/x/image/font/opentype.
//
// # Example usage
//
//	source := text.Default() // Go Regular, parsed once
//	face := source.Face(3.5)
//	w, h := face.Measure("12.5")
package text
