// Package reply parses assistant reply text: it extracts the embedded
// product JSON payload and splits the narrative into emoji-headed sections.
package reply

import (
	"encoding/json"
	"log/slog"
	"strings"

	"knowli_cli/api"
)

// Section is one titled narrative block of an assistant reply.
type Section struct {
	Title   string
	Bullets []string
}

const headerPrefix = "## "

// sectionMarkers are the emoji prefixes that open a narrative section header.
var sectionMarkers = []string{
	"👩🏼‍🔬", // key ingredients
	"🌟", // main benefits
	"✨", // suitability
	"💫", // personalization questions
}

// ExtractProduct returns the product described by the first balanced JSON
// object embedded in text, with defaults applied for absent fields. It
// returns nil when no object is present or the object does not parse;
// parse failures are logged, never propagated.
func ExtractProduct(text string) *api.Product {
	raw := firstJSONObject(text)
	if raw == "" {
		return nil
	}

	var p api.Product
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		slog.Debug("Embedded product JSON did not parse",
			"error", err,
			"candidate_size", len(raw))
		return nil
	}

	p.ApplyDefaults()
	return &p
}

// firstJSONObject returns the first balanced brace-delimited object in text.
// The scan tracks bracket depth and is string- and escape-aware, so objects
// of arbitrary nesting are handled. Returns "" when no balanced object exists.
func firstJSONObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// Sections splits reply text into titled sections. Everything before the
// first recognized header is dropped (the product JSON payload and any
// preamble live there); a reply with no recognized header anywhere yields
// zero sections. Within a section the first line is the title and the
// remainder is split on the bullet character, trimmed, empties discarded.
// Order matches appearance in the source text.
func Sections(text string) []Section {
	starts := headerIndexes(text)
	if len(starts) == 0 {
		if strings.TrimSpace(text) != "" {
			slog.Debug("Reply has no recognized section headers, narrative dropped",
				"dropped_size", len(text))
		}
		return nil
	}

	if dropped := text[:starts[0]]; strings.TrimSpace(dropped) != "" {
		slog.Debug("Dropping reply preamble before first section header",
			"dropped_size", len(dropped))
	}

	var sections []Section
	for i, start := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		chunk := text[start:end]
		if strings.TrimSpace(chunk) == "" {
			continue
		}

		title := chunk
		body := ""
		if nl := strings.IndexByte(chunk, '\n'); nl >= 0 {
			title = chunk[:nl]
			body = chunk[nl+1:]
		}

		var bullets []string
		for _, frag := range strings.Split(body, "•") {
			frag = strings.TrimSpace(frag)
			if frag != "" {
				bullets = append(bullets, frag)
			}
		}

		sections = append(sections, Section{
			Title:   strings.TrimSpace(title),
			Bullets: bullets,
		})
	}
	return sections
}

// headerIndexes returns the byte offsets of every "## <marker>" header.
func headerIndexes(text string) []int {
	var starts []int
	off := 0
	for {
		i := strings.Index(text[off:], headerPrefix)
		if i < 0 {
			return starts
		}
		pos := off + i
		rest := text[pos+len(headerPrefix):]
		for _, marker := range sectionMarkers {
			if strings.HasPrefix(rest, marker) {
				starts = append(starts, pos)
				break
			}
		}
		off = pos + len(headerPrefix)
	}
}
