package font

// Option configures Parse.
type Option func(*config)

type config struct {
	name     string
	language string
}

func defaultConfig() config {
	return config{language: "en"}
}

// WithName overrides the name read from the font's name table.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLanguage sets the BCP 47 language used when shaping.
// The default is "en".
func WithLanguage(tag string) Option {
	return func(c *config) {
		c.language = tag
	}
}
