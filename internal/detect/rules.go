package detect

// patternRule holds the weighted substring literals for one language.
// Strong literals score 3 points each, medium 2, weak 1 with the total
// weak contribution capped at weakCap.
type patternRule struct {
	tag    Tag
	strong []string
	medium []string
	weak   []string
}

const weakCap = 3

// ruleTable is initialized once and only ever read. Slice order is the
// tie-break order: when two languages score equally the earlier entry wins.
var ruleTable = []patternRule{
	{
		tag:    TagPython,
		strong: []string{"def ", "import ", "from ", "if __name__", "print(", "class ", "elif ", "lambda "},
		medium: []string{"self.", "True", "False", "None", "range(", "len(", "str("},
		weak:   []string{":", "and ", "or ", "not ", "in ", "is "},
	},
	{
		tag:    TagJavaScript,
		strong: []string{"function ", "const ", "let ", "var ", "=>", "console.log", "document.", "window."},
		medium: []string{"typeof ", "null", "undefined", "===", "!==", "JSON."},
		weak:   []string{"true", "false", "new ", "this."},
	},
	{
		tag:    TagCPP,
		strong: []string{"#include", "std::", "cout", "cin", "using namespace", "int main", "<<", ">>", "endl"},
		medium: []string{"class ", "void ", "int ", "char ", "float ", "double ", "return ", "public:", "private:"},
		weak:   []string{"{", "}", ";", "#define"},
	},
	{
		tag:    TagJava,
		strong: []string{"public class", "public static", "System.out", "import java", "public void", "private "},
		medium: []string{"String ", "int ", "boolean ", "ArrayList", "HashMap", "throws "},
		weak:   []string{"public ", "static ", "final ", "extends ", "implements "},
	},
	{
		tag:    TagCSharp,
		strong: []string{"using System", "Console.", "namespace ", "public class", "static void Main"},
		medium: []string{"string ", "int ", "bool ", "var ", "List<", "Dictionary<"},
		weak:   []string{"public ", "private ", "static ", "class "},
	},
	{
		tag:    TagHTML,
		strong: []string{"<!DOCTYPE", "<html", "<head>", "<body>", "<div", "<script>", "<style>"},
		medium: []string{"<p>", "<h1>", "<h2>", "<a href", "<img ", "<form>"},
		weak:   []string{"</", ">", "class=", "id="},
	},
	{
		tag:    TagCSS,
		strong: []string{"background:", "color:", "@media", "hover:", "display:", "position:", "margin:", "padding:"},
		medium: []string{"font-", "border:", "width:", "height:", "text-", "float:"},
		weak:   []string{"{", "}", ":", ";", "px", "%"},
	},
	{
		tag:    TagGo,
		strong: []string{"package ", "func ", "import ", "fmt.", "go ", "defer "},
		medium: []string{"var ", "type ", "struct ", "interface ", "chan "},
		weak:   []string{":=", "range ", "make(", "len("},
	},
	{
		tag:    TagRuby,
		strong: []string{"def ", "end", "puts ", "require ", "class ", "module "},
		medium: []string{"@", "@@", "nil", "true", "false", "unless "},
		weak:   []string{"do |", "|", "each ", "map "},
	},
	{
		tag:    TagPHP,
		strong: []string{"<?php", "<?=", "$_GET", "$_POST", "function ", "echo ", "print "},
		medium: []string{"$", "->", "::", "array(", "isset("},
		weak:   []string{";", "==", "!=", "&&", "||"},
	},
	{
		tag:    TagTypeScript,
		strong: []string{"interface ", "type ", ": string", ": number", ": boolean", "export ", "import "},
		medium: []string{"async ", "await ", "Promise<", "Array<", "readonly "},
		weak:   []string{"const ", "let ", "var ", "=>"},
	},
	{
		tag:    TagJSON,
		strong: []string{"\":", "\",", "\"}", "\"]", "\": {", "\": ["},
		medium: []string{"true", "false", "null"},
		weak:   []string{"{", "}", "[", "]", "\""},
	},
	{
		tag:    TagXML,
		strong: []string{"<?xml", "<!DOCTYPE", "</", "xmlns:", "encoding="},
		medium: []string{"<root>", "</root>", "version=", "standalone="},
		weak:   []string{"<", ">", "=", "\""},
	},
}

// signalLiterals are the curated high-signal substrings used to derive an
// independent confidence for a language resolved from the lexical guesser.
var signalLiterals = map[Tag][]string{
	TagPython:     {"def ", "import ", "print(", "if __name__"},
	TagJavaScript: {"function", "const ", "let ", "=>", "console.log"},
	TagCPP:        {"#include", "std::", "cout", "using namespace"},
	TagJava:       {"public class", "System.out", "public static"},
	TagCSharp:     {"using System", "Console.", "namespace "},
	TagHTML:       {"<!DOCTYPE", "<html", "<head>", "<body>"},
	TagCSS:        {"background:", "color:", "@media", "hover:"},
	TagGo:         {"package ", "func ", "fmt."},
	TagRuby:       {"def ", "end", "puts "},
	TagPHP:        {"<?php", "$", "echo "},
	TagTypeScript: {"interface ", "type ", ": string"},
	TagJSON:       {"\":", "\",", "true", "false", "null"},
	TagXML:        {"<?xml", "<!DOCTYPE", "xmlns:"},
}
