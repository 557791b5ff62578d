package question

import _ "embed"

// DefaultDocument is the question table bundled with the binary.
//
//go:embed questions.md
var DefaultDocument string
