package format

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/code-indenter/backend/internal/config"
	"github.com/code-indenter/backend/internal/detect"
)

// ErrUnsupportedLanguage is returned for tags no formatter handles.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// SupportedTags lists the canonical tags /api/indent accepts, in the order
// they are reported to clients.
var SupportedTags = []detect.Tag{
	detect.TagPython, detect.TagJavaScript, detect.TagHTML, detect.TagCSS,
	detect.TagCPP, detect.TagC, detect.TagJava, detect.TagCSharp, detect.TagGo,
	detect.TagRuby, detect.TagPHP, detect.TagTypeScript, detect.TagJSON, detect.TagXML,
}

// Dispatcher routes a (code, language) pair to its external formatter.
// Formatting is best-effort: any tool failure returns the input unchanged.
type Dispatcher struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewDispatcher(cfg *config.Config, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{cfg: cfg, logger: logger}
}

// Format reformats code for the given canonical tag. The only error it
// returns is ErrUnsupportedLanguage; every tool failure is absorbed and the
// original code comes back unchanged.
func (d *Dispatcher) Format(ctx context.Context, code string, tag detect.Tag) (string, error) {
	var (
		formatted string
		err       error
	)

	switch tag {
	case detect.TagPython:
		formatted, err = d.runStdin(ctx, d.cfg.BlackBin, []string{"-q", "-"}, code)
	case detect.TagJavaScript:
		formatted, err = d.prettier(ctx, "babel", "temp.js", code)
	case detect.TagTypeScript:
		formatted, err = d.prettier(ctx, "typescript", "temp.ts", code)
	case detect.TagHTML:
		formatted, err = d.prettier(ctx, "html", "temp.html", code)
	case detect.TagCSS:
		formatted, err = d.prettier(ctx, "css", "temp.css", code)
	case detect.TagCPP, detect.TagC, detect.TagJava, detect.TagCSharp:
		formatted, err = d.clangFormat(ctx, code, tag)
	case detect.TagGo:
		formatted, err = d.runStdin(ctx, d.cfg.GofmtBin, nil, code)
	case detect.TagRuby:
		formatted, err = d.prettier(ctx, "ruby", "temp.rb", code)
		if err != nil {
			formatted, err = indentRuby(code), nil
		}
	case detect.TagPHP:
		formatted, err = d.phpFix(ctx, code)
	case detect.TagJSON:
		formatted, err = formatJSON(code)
	case detect.TagXML:
		formatted, err = d.prettier(ctx, "xml", "temp.xml", code)
		if err != nil {
			formatted, err = indentXML(code), nil
		}
	default:
		return "", ErrUnsupportedLanguage
	}

	if err != nil {
		d.logger.Warn("formatter failed, returning code unchanged",
			slog.String("language", string(tag)),
			slog.String("error", err.Error()))
		return code, nil
	}
	if strings.TrimSpace(formatted) == "" {
		d.logger.Warn("formatter produced empty output, returning code unchanged",
			slog.String("language", string(tag)))
		return code, nil
	}
	return formatted, nil
}
