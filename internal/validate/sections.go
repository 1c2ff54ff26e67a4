// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate scores markdown reports against configurable quality
// criteria. It splits a document into sections, runs independent quality
// checkers over it, and combines the results into a single verdict with a
// 0-100 score and actionable recommendations.
package validate

import "strings"

// Sections maps section titles to body text, preserving document order.
// A later section with the same title overwrites the earlier body but keeps
// the original position. Heading depth is not tracked: titles at different
// depths collide.
type Sections struct {
	names  []string
	bodies map[string]string
}

// Get returns the body for a section title.
func (s Sections) Get(name string) (string, bool) {
	body, ok := s.bodies[name]
	return body, ok
}

// Has reports whether a section with the given title exists.
func (s Sections) Has(name string) bool {
	_, ok := s.bodies[name]
	return ok
}

// Names returns the section titles in document order.
func (s Sections) Names() []string {
	return s.names
}

// Len returns the number of distinct sections.
func (s Sections) Len() int {
	return len(s.names)
}

func (s *Sections) put(name, body string) {
	if s.bodies == nil {
		s.bodies = make(map[string]string)
	}
	if _, ok := s.bodies[name]; !ok {
		s.names = append(s.names, name)
	}
	s.bodies[name] = body
}

// ExtractSections splits markdown content into named sections. A section
// starts at any line beginning with '#', regardless of depth; its body runs
// until the next heading, trimmed of surrounding blank lines. Text before
// the first heading is discarded. The function is pure: the same input
// always yields the same sections.
func ExtractSections(content string) Sections {
	var (
		secs    Sections
		current string
		body    []string
	)

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "#") {
			if current != "" {
				secs.put(current, strings.TrimSpace(strings.Join(body, "\n")))
			}
			current = strings.TrimSpace(strings.TrimLeft(line, "#"))
			body = body[:0]
			continue
		}
		if current != "" {
			body = append(body, line)
		}
	}
	if current != "" {
		secs.put(current, strings.TrimSpace(strings.Join(body, "\n")))
	}

	return secs
}

// wordCount counts whitespace-separated words.
func wordCount(text string) int {
	return len(strings.Fields(text))
}
