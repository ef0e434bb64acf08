package lts

import (
	"io"
	"regexp"
	"strconv"

	"github.com/foo-jin/mucalc/stateset"
)

var (
	headerPattern = regexp.MustCompile(`des\s*\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)`)
	edgePattern   = regexp.MustCompile(`\(\s*(\d+)\s*,\s*"([^"]*)"\s*,\s*(\d+)\s*\)`)
)

// Parse reads an Lts from Aldebaran text:
//
//	des (init,n_transitions,n_states)
//	(src,"label",dst)
//	...
//
// Whitespace between elements — including newlines, so several edges may
// share a line — is insignificant. n_transitions is used only to
// pre-size the transition map; neither it nor n_states is validated
// against the parsed edge list or state set.
func Parse(r io.Reader) (*Lts, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Detail: "reading input", Cause: err}
	}
	return ParseString(string(data))
}

// ParseString is Parse over an already-read string.
func ParseString(text string) (*Lts, error) {
	loc := headerPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, &ParseError{Detail: "missing or malformed header line \"des (init,n_transitions,n_states)\""}
	}
	header := headerPattern.FindStringSubmatch(text)
	init, err := parseUint32(header[1])
	if err != nil {
		return nil, &ParseError{Detail: "invalid init state in header", Cause: err}
	}
	nTransitions, err := parseUint32(header[2])
	if err != nil {
		return nil, &ParseError{Detail: "invalid transition count in header", Cause: err}
	}

	l := &Lts{
		init:   State(init),
		states: stateset.Of(State(init)),
		trans:  make(map[transKey][]State, nTransitions),
	}

	body := text[loc[1]:]
	for _, m := range edgePattern.FindAllStringSubmatch(body, -1) {
		src, err := parseUint32(m[1])
		if err != nil {
			return nil, &ParseError{Detail: "invalid source state in edge", Cause: err}
		}
		dst, err := parseUint32(m[3])
		if err != nil {
			return nil, &ParseError{Detail: "invalid destination state in edge", Cause: err}
		}
		l.AddEdge(State(src), m[2], State(dst))
	}
	return l, nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
