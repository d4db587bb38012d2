// Package font loads TrueType and OpenType fonts for quartz contexts.
//
// A Font is parsed twice from the same data: go-text/typesetting supplies
// the character map, advances and vertical metrics, and
// golang.org/x/image/font/sfnt supplies glyph outlines and names. Fonts
// implement quartz.Font and quartz.Shaper.
//
// # Example usage
//
//	f, err := font.Named("Go-Bold")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctx.SetFont(f)
//	ctx.SetFontSize(24)
//	ctx.ShowText("Hello")
//
// The Go font family is bundled and available through Named and Default.
// Other fonts are loaded with Parse.
//
// A Font is not safe for concurrent use. Fonts returned by separate Named
// calls share their parsed tables and may be used from different
// goroutines.
package font
