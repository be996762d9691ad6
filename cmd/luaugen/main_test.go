package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const classifySrc = `{
  "type": "File",
  "decls": [
    {
      "type": "FuncDecl",
      "pos": "1:1",
      "name": "classify",
      "params": [{"type": "Field", "name": "n", "paramtype": {"type": "Name", "value": "i32"}}],
      "result": {"type": "Name", "value": "String"},
      "body": {
        "type": "BlockStmt",
        "stmts": [
          {
            "type": "LetStmt",
            "pos": "2:5",
            "pattern": {"type": "IdentPat", "name": "label"},
            "value": {
              "type": "MatchExpr",
              "x": {"type": "Name", "value": "n"},
              "arms": [
                {"type": "Arm", "pattern": {"type": "LitPat", "value": {"type": "BasicLit", "kind": "int", "value": "0"}}, "body": {"type": "BasicLit", "kind": "string", "value": "zero"}},
                {"type": "Arm", "pattern": {"type": "WildPat"}, "body": {"type": "BasicLit", "kind": "string", "value": "other"}}
              ]
            }
          },
          {
            "type": "ExprStmt",
            "pos": "6:5",
            "x": {"type": "BadExpr", "pos": "6:5", "kind": "macro"}
          }
        ],
        "tail": {"type": "Name", "value": "label"}
      }
    }
  ]
}`

const classifyLuau = `function classify(n: number): string
    local label = nil
    if n == 0 then
        label = "zero"
    else
        label = "other"
    end
    return label
end
`

// setFlag sets a command flag for the duration of the test.
func setFlag[T any](t *testing.T, p *T, v T) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

func TestRunGenerate(t *testing.T) {
	filename := writeTempJSONFile(t, classifySrc)
	code, out, errOut := captureOutput(t, func() int {
		return runGenerate(filename)
	})

	if code != 0 {
		t.Fatalf("runGenerate exit=%d\nstderr:\n%s", code, errOut)
	}
	if out != classifyLuau {
		t.Errorf("output:\n%s\nwant:\n%s", out, classifyLuau)
	}
	if !strings.Contains(errOut, "input.json:6:5: warning: skipping macro expression statement") {
		t.Errorf("stderr missing positioned warning:\n%s", errOut)
	}
}

func TestRunGenerateQuiet(t *testing.T) {
	setFlag(t, quiet, true)
	filename := writeTempJSONFile(t, classifySrc)
	code, _, errOut := captureOutput(t, func() int {
		return runGenerate(filename)
	})
	if code != 0 {
		t.Fatalf("runGenerate exit=%d", code)
	}
	if errOut != "" {
		t.Errorf("unexpected stderr with -q:\n%s", errOut)
	}
}

func TestRunGenerateOutputFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out.luau")
	setFlag(t, output, outFile)
	setFlag(t, indent, "2")
	setFlag(t, quiet, true)

	filename := writeTempJSONFile(t, classifySrc)
	code, out, errOut := captureOutput(t, func() int {
		return runGenerate(filename)
	})
	if code != 0 {
		t.Fatalf("runGenerate exit=%d\nstderr:\n%s", code, errOut)
	}
	if out != "" {
		t.Errorf("unexpected stdout:\n%s", out)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.ReplaceAll(classifyLuau, "    ", "  ")
	if string(data) != want {
		t.Errorf("output file:\n%s\nwant:\n%s", data, want)
	}
}

func TestRunGenerateTranslationError(t *testing.T) {
	src := `{"type": "File", "decls": [{"type": "StmtDecl", "stmt": {
		"type": "ExprStmt",
		"x": {"type": "Operation", "pos": "4:9", "op": "<<", "x": {"type": "Name", "value": "a"}, "y": {"type": "BasicLit", "kind": "int", "value": "1"}}
	}}]}`
	outFile := filepath.Join(t.TempDir(), "out.luau")
	setFlag(t, output, outFile)

	filename := writeTempJSONFile(t, src)
	code, _, errOut := captureOutput(t, func() int {
		return runGenerate(filename)
	})
	if code != 1 {
		t.Fatalf("runGenerate exit=%d, want 1", code)
	}
	if !strings.Contains(errOut, "input.json:4:9: unsupported operator <<") {
		t.Errorf("stderr missing error:\n%s", errOut)
	}
	if _, err := os.Stat(outFile); !os.IsNotExist(err) {
		t.Errorf("output file written on failure (stat err %v)", err)
	}
}

func TestRunGenerateDecodeError(t *testing.T) {
	filename := writeTempJSONFile(t, `{"type": "File", "decls": [{"type": "Struct"}]}`)
	code, out, errOut := captureOutput(t, func() int {
		return runGenerate(filename)
	})
	if code != 1 {
		t.Fatalf("runGenerate exit=%d, want 1", code)
	}
	if out != "" {
		t.Errorf("unexpected stdout:\n%s", out)
	}
	if !strings.Contains(errOut, "$.decls[0]") {
		t.Errorf("stderr missing JSON path:\n%s", errOut)
	}
}

func TestRunGenerateMissingFile(t *testing.T) {
	code, _, errOut := captureOutput(t, func() int {
		return runGenerate(filepath.Join(t.TempDir(), "missing.json"))
	})
	if code != 1 || !strings.HasPrefix(errOut, "error: ") {
		t.Errorf("exit=%d stderr=%q, want 1 and an error", code, errOut)
	}
}

func TestRunEmitAST(t *testing.T) {
	filename := writeTempJSONFile(t, classifySrc)
	code, out, errOut := captureOutput(t, func() int {
		return runEmitAST(filename)
	})
	if code != 0 {
		t.Fatalf("runEmitAST exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{"input.json:1:1\n", "Name: classify", "n i32", "MatchExpr", "WildPat"} {
		if !strings.Contains(out, want) {
			t.Errorf("AST dump missing %q:\n%s", want, out)
		}
	}
}

func TestRunEmitASTJSON(t *testing.T) {
	setFlag(t, astFormat, "json")
	filename := writeTempJSONFile(t, classifySrc)
	code, out, errOut := captureOutput(t, func() int {
		return runEmitAST(filename)
	})
	if code != 0 {
		t.Fatalf("runEmitAST exit=%d\nstderr:\n%s", code, errOut)
	}

	// The JSON dump is itself valid input.
	again := writeTempJSONFile(t, out)
	setFlag(t, quiet, true)
	code, luau, errOut := captureOutput(t, func() int {
		return runGenerate(again)
	})
	if code != 0 {
		t.Fatalf("runGenerate on JSON dump exit=%d\nstderr:\n%s", code, errOut)
	}
	if luau != classifyLuau {
		t.Errorf("output from JSON dump:\n%s\nwant:\n%s", luau, classifyLuau)
	}
}

func TestRunEmitASTUnknownFormat(t *testing.T) {
	setFlag(t, astFormat, "yaml")
	filename := writeTempJSONFile(t, classifySrc)
	code, _, errOut := captureOutput(t, func() int {
		return runEmitAST(filename)
	})
	if code != 1 || !strings.Contains(errOut, `unknown AST format "yaml"`) {
		t.Errorf("exit=%d stderr=%q", code, errOut)
	}
}

func TestIndentUnit(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"    ", "    "},
		{"2", "  "},
		{"0", ""},
		{"tab", "\t"},
		{"\t", "\t"},
		{"..", ".."},
	}
	for _, tt := range tests {
		if got := indentUnit(tt.in); got != tt.want {
			t.Errorf("indentUnit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func writeTempJSONFile(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	filename := filepath.Join(dir, "input.json")
	if err := os.WriteFile(filename, []byte(src), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return filename
}

func captureOutput(t *testing.T, fn func() int) (code int, stdout string, stderr string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stdout: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stderr: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	code = fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	outBytes, _ := io.ReadAll(rOut)
	errBytes, _ := io.ReadAll(rErr)
	_ = rOut.Close()
	_ = rErr.Close()

	return code, string(outBytes), string(errBytes)
}
