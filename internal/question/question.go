package question

import "regexp"

// Question is a single interview question parsed from a source table.
type Question struct {
	// Name identifies the question. The completion ledger is keyed by it.
	Name string `json:"name"`

	// Topic is usually a markdown link to the problem statement.
	Topic string `json:"topic"`

	Pattern  string `json:"pattern"`
	Solution string `json:"solution"`
}

// Link is a markdown link split into its display text and target.
type Link struct {
	Text string
	URL  string
}

var linkPattern = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)

// ParseLink extracts the first [text](url) link from s.
func ParseLink(s string) (Link, bool) {
	m := linkPattern.FindStringSubmatch(s)
	if m == nil {
		return Link{}, false
	}
	return Link{Text: m[1], URL: m[2]}, true
}

// DisplayText returns the link text of s, or s itself when it holds no link.
func DisplayText(s string) string {
	if l, ok := ParseLink(s); ok {
		return l.Text
	}
	return s
}

// Title returns the heading shown for q: the topic's display text, falling
// back to the name when the topic is empty.
func (q Question) Title() string {
	if q.Topic == "" {
		return q.Name
	}
	return DisplayText(q.Topic)
}

// URL returns the link target embedded in the topic, if any.
func (q Question) URL() string {
	if l, ok := ParseLink(q.Topic); ok {
		return l.URL
	}
	return ""
}
