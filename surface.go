package draft

// Surface receives the drawing commands issued by Render.
//
// The path appended with AppendPath is consumed by the next Stroke or
// Fill. Coordinates are mapped by the last SetTransform; Save and Restore
// bracket transform changes.
type Surface interface {
	Save()
	Restore()
	SetTransform(m Matrix)
	AppendPath(p *Path)
	Stroke(style LineStyle)
	Fill(c Color)

	// ShowText draws s with its baseline origin at the given point.
	ShowText(s string, at Pair, font FontStyle)
}
