package testparser

import "strings"

// Registry maps test runner identifiers to their parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates a new parser registry with all built-in parsers.
func NewRegistry() *Registry {
	r := &Registry{
		parsers: make(map[string]Parser),
	}

	pytestParser := &PytestParser{}
	unittestParser := &UnittestParser{}

	// Map runner identifiers to parsers
	r.parsers["pytest"] = pytestParser
	r.parsers["python"] = pytestParser
	r.parsers["py"] = pytestParser
	r.parsers["unittest"] = unittestParser

	return r
}

// GetParser returns a parser for the given runner identifier.
// Returns nil if no parser is found.
func (r *Registry) GetParser(runner string) Parser {
	return r.parsers[strings.ToLower(runner)]
}

// RegisterParser adds a custom parser for a runner identifier.
func (r *Registry) RegisterParser(runner string, parser Parser) {
	r.parsers[strings.ToLower(runner)] = parser
}
