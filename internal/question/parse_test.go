package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ExampleTable(t *testing.T) {
	doc := "| 1 | 2 | Two Sum | [Arrays](url) | Hash Map | sol |\n" +
		"|---|---|---|---|---|---|\n" +
		"| x | y | Valid | [Stack](url2) | Stack | sol2 |"

	got := Parse(doc)
	require.Len(t, got, 2)

	assert.Equal(t, Question{Name: "Two Sum", Topic: "[Arrays](url)", Pattern: "Hash Map", Solution: "sol"}, got[0])
	assert.Equal(t, Question{Name: "Valid", Topic: "[Stack](url2)", Pattern: "Stack", Solution: "sol2"}, got[1])

	assert.Equal(t, "Arrays", DisplayText(got[0].Topic))
	assert.Equal(t, "Stack", DisplayText(got[1].Topic))
}

func TestParse_SkipsHeaderAndSeparator(t *testing.T) {
	doc := `# Title

| Num | Difficulty | Name | Problem | Pattern | Solution |
| :-: | ---------- | ---- | ------- | ------- | -------- |
| 1 | Easy | Number of Islands | [Islands](u) | Graphs | Flood fill |
`
	got := Parse(doc)
	require.Len(t, got, 1)
	assert.Equal(t, "Number of Islands", got[0].Name)
}

func TestParse_DropsRowsWithoutName(t *testing.T) {
	doc := "| 1 | Easy |  | [A](u) | p | s |\n| 2 | Easy | B | [B](u) | p | s |\n| 3 |\n"
	got := Parse(doc)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Name)
}

func TestParse_ShortRowBlanksFields(t *testing.T) {
	got := Parse("| 1 | Easy | Lonely |")
	require.Len(t, got, 1)
	assert.Equal(t, Question{Name: "Lonely"}, got[0])
}

func TestParse_IgnoresNonTableLines(t *testing.T) {
	doc := "intro text\n  | indented rows do not start with a pipe |\n\r\n| 1 | e | Kept | t | p | s |\r\n"
	got := Parse(doc)
	require.Len(t, got, 1)
	assert.Equal(t, "s", got[0].Solution)
}

func TestParse_PreservesDocumentOrder(t *testing.T) {
	doc := "| 1 | e | C | t | p | s |\n| 2 | e | A | t | p | s |\n| 3 | e | B | t | p | s |\n"
	var names []string
	for _, q := range Parse(doc) {
		names = append(names, q.Name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("| Num | Difficulty | Name |\n|---|---|---|\n"))
}

func TestParse_DefaultDocument(t *testing.T) {
	qs := Parse(DefaultDocument)
	require.NotEmpty(t, qs)
	for _, q := range qs {
		assert.NotEmpty(t, q.Name)
		assert.NotEmpty(t, q.URL(), "question %q should link to its problem", q.Name)
	}
}
