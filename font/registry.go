package font

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// DefaultName is the name of the font returned by Default.
const DefaultName = "Go"

// bundled maps "Family-Trait" names to font data. Tables are parsed on
// first use and shared afterwards.
type bundled struct {
	data []byte

	once sync.Once
	p    *parsed
	err  error
}

var registry = map[string]*bundled{
	"Go":                 {data: goregular.TTF},
	"Go-Bold":            {data: gobold.TTF},
	"Go-Italic":          {data: goitalic.TTF},
	"Go-BoldItalic":      {data: gobolditalic.TTF},
	"Go-Medium":          {data: gomedium.TTF},
	"Go-MediumItalic":    {data: gomediumitalic.TTF},
	"GoMono":             {data: gomono.TTF},
	"GoMono-Bold":        {data: gomonobold.TTF},
	"GoMono-Italic":      {data: gomonoitalic.TTF},
	"GoMono-BoldItalic":  {data: gomonobolditalic.TTF},
	"GoSmallcaps":        {data: gosmallcaps.TTF},
	"GoSmallcaps-Italic": {data: gosmallcapsitalic.TTF},
}

// Named returns a bundled font by name, for example "Go", "Go-Bold" or
// "GoMono-Italic". "Go-Regular" is accepted for "Go". Each call returns a
// new Font; the parsed tables are shared.
func Named(name string, opts ...Option) (*Font, error) {
	if name == "Go-Regular" {
		name = DefaultName
	}
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	b.once.Do(func() {
		b.p, b.err = parse(b.data)
	})
	if b.err != nil {
		return nil, b.err
	}
	return newFont(b.p, append([]Option{WithName(name)}, opts...)...), nil
}

// Default returns Go Regular.
func Default() *Font {
	f, err := Named(DefaultName)
	if err != nil {
		// The bundled data is part of the binary.
		panic(err)
	}
	return f
}

// Names returns the names accepted by Named, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
