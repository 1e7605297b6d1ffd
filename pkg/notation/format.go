package notation

import "strings"

const indent = "  "

// block renders contents one per line, indented under header and closed by end
func block(header string, contents []Node, end string) (string, error) {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for _, child := range contents {
		text, err := child.Lilypond()
		if err != nil {
			return "", err
		}
		for _, line := range strings.Split(text, "\n") {
			b.WriteString(indent)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString(end)
	return b.String(), nil
}

func delimiters(simultaneous bool) (string, string) {
	if simultaneous {
		return "<<", ">>"
	}
	return "{", "}"
}

// contextBlock renders \new Ctx or \context Ctx = "name" ahead of the contents
func contextBlock(context, name string, simultaneous bool, contents []Node) (string, error) {
	open, end := delimiters(simultaneous)
	header := `\new ` + context + " " + open
	if name != "" {
		header = `\context ` + context + ` = "` + name + `" ` + open
	}
	return block(header, contents, end)
}
