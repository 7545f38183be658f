package format

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/code-indenter/backend/internal/detect"
)

// runStdin pipes code through an external tool and returns its stdout.
func (d *Dispatcher) runStdin(ctx context.Context, bin string, args []string, code string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.FormatTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = strings.NewReader(code)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s failed: %w (%s)", bin, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// prettier invokes prettier through npx with an explicit parser. The
// stdin-filepath only exists to give prettier a file extension to key on.
func (d *Dispatcher) prettier(ctx context.Context, parser, filename, code string) (string, error) {
	args := []string{"prettier", "--parser", parser, "--stdin-filepath", filename}
	return d.runStdin(ctx, d.cfg.NpxBin, args, code)
}

var clangExtensions = map[detect.Tag]string{
	detect.TagCPP:    "cpp",
	detect.TagC:      "c",
	detect.TagJava:   "java",
	detect.TagCSharp: "cs",
}

// clangFormat runs clang-format over a temp file carrying the right
// extension. C# gets the Microsoft style, the rest Google.
func (d *Dispatcher) clangFormat(ctx context.Context, code string, tag detect.Tag) (string, error) {
	ext := clangExtensions[tag]
	style := "Google"
	if tag == detect.TagCSharp {
		style = "Microsoft"
	}

	tmp, err := os.CreateTemp("", "indent-*."+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(code); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	tmp.Close()

	ctx, cancel := context.WithTimeout(ctx, d.cfg.FormatTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, d.cfg.ClangFormatBin,
		"--style="+style,
		"--assume-filename", "temp."+ext,
		tmp.Name())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("clang-format failed: %w (%s)", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// phpFix rewrites a temp file with php-cs-fixer, falling back to phpcbf.
// phpcbf exits 1 when it fixed something, so both 0 and 1 count as success.
func (d *Dispatcher) phpFix(ctx context.Context, code string) (string, error) {
	tmp, err := os.CreateTemp("", "indent-*.php")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(code); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	tmp.Close()

	ctx, cancel := context.WithTimeout(ctx, d.cfg.FormatTimeout)
	defer cancel()

	fixer := exec.CommandContext(ctx, d.cfg.PhpCsFixerBin, "fix", tmp.Name(), "--quiet")
	if err := fixer.Run(); err == nil {
		return readBack(tmp.Name())
	}

	cbf := exec.CommandContext(ctx, d.cfg.PhpcbfBin, "--standard=PSR12", tmp.Name())
	err = cbf.Run()
	if err == nil {
		return readBack(tmp.Name())
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return readBack(tmp.Name())
	}
	return "", fmt.Errorf("php formatters failed: %w", err)
}

func readBack(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read formatted file: %w", err)
	}
	return string(data), nil
}
