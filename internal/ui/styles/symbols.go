package styles

// Symbols holds the status icons used in notices and doctor output
type Symbols struct {
	OK      string
	Warn    string
	Fail    string
	Unknown string
}

// Default symbols
var defaultSymbols = Symbols{
	OK:      "✓",
	Warn:    "⚠",
	Fail:    "✗",
	Unknown: "?",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	OK:      "", // nf-fa-check
	Warn:    "", // nf-fa-warning
	Fail:    "", // nf-fa-times
	Unknown: "", // nf-fa-question
}

var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}
