package detect

import "strings"

// Tag is the canonical identifier for a supported language
type Tag string

const (
	TagPython     Tag = "python"
	TagJavaScript Tag = "javascript"
	TagTypeScript Tag = "typescript"
	TagHTML       Tag = "html"
	TagCSS        Tag = "css"
	TagCPP        Tag = "cpp"
	TagC          Tag = "c"
	TagJava       Tag = "java"
	TagCSharp     Tag = "csharp"
	TagGo         Tag = "go"
	TagRuby       Tag = "ruby"
	TagPHP        Tag = "php"
	TagJSON       Tag = "json"
	TagXML        Tag = "xml"
	TagText       Tag = "text"
)

// aliases maps every accepted language name to its canonical tag.
// Canonical names map to themselves so Canonical is idempotent.
var aliases = map[string]Tag{
	"python":     TagPython,
	"python3":    TagPython,
	"javascript": TagJavaScript,
	"js":         TagJavaScript,
	"typescript": TagTypeScript,
	"html":       TagHTML,
	"css":        TagCSS,
	"c++":        TagCPP,
	"cpp":        TagCPP,
	"c":          TagC,
	"java":       TagJava,
	"c#":         TagCSharp,
	"csharp":     TagCSharp,
	"go":         TagGo,
	"ruby":       TagRuby,
	"php":        TagPHP,
	"json":       TagJSON,
	"xml":        TagXML,
	"text":       TagText,
}

// Canonical resolves a language name or alias to its canonical tag.
// Unknown names are returned as-is (lowercased) with ok=false so callers
// can report them back to the client.
func Canonical(name string) (Tag, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if tag, ok := aliases[normalized]; ok {
		return tag, true
	}
	return Tag(normalized), false
}
