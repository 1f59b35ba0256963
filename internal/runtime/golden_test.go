package runtime

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fns-lang/internal/diag"
)

// replay feeds source to a session line by line, as the REPL does, and
// returns what the REPL would print for each non-blank line.
func replay(source string) string {
	interp := NewInterpreter(nil)
	var out strings.Builder
	for _, line := range strings.Split(source, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		val, err := interp.RunSource(line)
		if err != nil {
			out.WriteString(diag.Render(err, line))
		} else {
			out.WriteString(val.String())
		}
		out.WriteString("\n")
	}
	return out.String()
}

// goldenTest replays a .fns file and compares its output to a .expected file.
func goldenTest(t *testing.T, name string) {
	t.Helper()

	srcPath := filepath.Join("..", "..", "testdata", name+".fns")
	expectedPath := filepath.Join("..", "..", "testdata", name+".expected")

	source, err := os.ReadFile(srcPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", srcPath, err)
	}

	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", expectedPath, err)
	}

	got := replay(string(source))

	expectedStr := strings.TrimRight(string(expected), "\n")
	gotStr := strings.TrimRight(got, "\n")

	if gotStr != expectedStr {
		expectedLines := strings.Split(expectedStr, "\n")
		gotLines := strings.Split(gotStr, "\n")

		t.Errorf("output mismatch for %s", name)
		maxLines := max(len(expectedLines), len(gotLines))
		for i := 0; i < maxLines; i++ {
			exp, g := "<missing>", "<missing>"
			if i < len(expectedLines) {
				exp = expectedLines[i]
			}
			if i < len(gotLines) {
				g = gotLines[i]
			}
			prefix := "  "
			if exp != g {
				prefix = "! "
			}
			t.Logf("%sline %d: expected=%q got=%q", prefix, i+1, exp, g)
		}
	}
}

func TestGoldenBasics(t *testing.T) {
	goldenTest(t, "golden_basics")
}

func TestGoldenObjects(t *testing.T) {
	goldenTest(t, "golden_objects")
}

func TestGoldenErrors(t *testing.T) {
	goldenTest(t, "golden_errors")
}
