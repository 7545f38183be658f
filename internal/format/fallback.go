package format

import "strings"

// Last-resort line indenters, used when prettier is not installed.
// These only track block depth; they make no attempt at real parsing.

var rubyDedent = []string{"end", "}", "]", "elsif", "else", "rescue", "ensure"}
var rubyIndent = []string{"def ", "class ", "module ", "if ", "unless ", "while ", "for ", "begin", "case ", "elsif ", "else"}

func indentRuby(code string) string {
	var out []string
	depth := 0

	for _, line := range strings.Split(code, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			out = append(out, "")
			continue
		}

		if hasAnyPrefix(stripped, rubyDedent) && !strings.HasPrefix(stripped, "else") {
			depth = max(0, depth-1)
		}

		out = append(out, strings.Repeat("  ", depth)+stripped)

		if hasAnyPrefix(stripped, rubyIndent) ||
			strings.HasSuffix(stripped, " do") ||
			strings.HasSuffix(stripped, "{") ||
			strings.HasSuffix(stripped, "[") {
			depth++
		}
	}
	return strings.Join(out, "\n")
}

func indentXML(code string) string {
	var out []string
	depth := 0

	for _, line := range strings.Split(code, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if strings.HasPrefix(stripped, "</") {
			depth = max(0, depth-1)
		}

		out = append(out, strings.Repeat("  ", depth)+stripped)

		if strings.HasPrefix(stripped, "<") &&
			!strings.HasPrefix(stripped, "</") &&
			!strings.HasPrefix(stripped, "<?") &&
			!strings.HasSuffix(stripped, "/>") {
			// A line that opens and closes its own element stays level.
			selfContained := strings.Contains(stripped, ">") &&
				strings.Count(stripped, "<") == strings.Count(stripped, "</")+1
			if !selfContained {
				depth++
			}
		}
	}
	return strings.Join(out, "\n")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
