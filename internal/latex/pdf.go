package latex

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/FocuswithJustin/interlinear/core/errors"
	"github.com/FocuswithJustin/interlinear/internal/logging"
)

// auxExtensions are the LuaLaTeX byproducts removed after a build.
var auxExtensions = []string{".aux", ".log", ".out", ".toc"}

// CheckLuaLaTeX reports whether lualatex is on PATH.
func CheckLuaLaTeX() bool {
	_, err := exec.LookPath("lualatex")
	return err == nil
}

// BuildPDF compiles a .tex file with LuaLaTeX and returns the PDF path.
// It runs two passes so section references settle. Auxiliary files are
// removed unless keepAux is set.
func BuildPDF(ctx context.Context, texPath string, keepAux bool) (string, error) {
	dir := filepath.Dir(texPath)
	name := filepath.Base(texPath)

	for pass := 1; pass <= 2; pass++ {
		cmd := exec.CommandContext(ctx, "lualatex",
			"-interaction=nonstopmode", "-halt-on-error", name)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		if err != nil {
			return "", errors.NewIO("compile", texPath,
				fmt.Errorf("lualatex pass %d: %w\n%s", pass, err, tail(out, 20)))
		}
		logging.DebugContext(ctx, "lualatex pass complete", "pass", pass, "file", name)
	}

	if !keepAux {
		stem := strings.TrimSuffix(texPath, filepath.Ext(texPath))
		for _, ext := range auxExtensions {
			os.Remove(stem + ext)
		}
	}

	return strings.TrimSuffix(texPath, filepath.Ext(texPath)) + ".pdf", nil
}

// tail returns the last n lines of command output for error context.
func tail(out []byte, n int) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
