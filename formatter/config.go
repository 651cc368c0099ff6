package formatter

import (
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// DefaultLineWidth is used whenever no terminal width can be determined.
const DefaultLineWidth = 65

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int            // maximum display width of a line, in fixed width ‘en’s
	Context   *uax11.Context // context for East Asian Width; nil means uax11.LatinContext
}

func (config *Config) normalized() *Config {
	c := Config{}
	if config != nil {
		c = *config
	}
	if c.LineWidth <= 0 {
		c.LineWidth = DefaultLineWidth
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	return &c
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdin is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = DefaultLineWidth
		} else if w > 20 {
			config.LineWidth = w - 5
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = DefaultLineWidth
	}
	config.Context = uax11.ContextFromEnvironment()
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
