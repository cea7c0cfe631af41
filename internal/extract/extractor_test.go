package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// newTestRunner writes script as a shell script into a temp parser dir and
// returns a Runner invoking it through sh, plus the path of a fake PDF.
func newTestRunner(t *testing.T, script string, timeout time.Duration) (*Runner, string) {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "parse.sh"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	pdf := filepath.Join(dir, "resume.pdf")
	if err := os.WriteFile(pdf, []byte("%PDF-1.4 fake"), 0o644); err != nil {
		t.Fatal(err)
	}

	return NewRunner("sh", nil, "parse.sh", dir, timeout, zerolog.Nop()), pdf
}

func TestExtractSuccessWithNoisyOutput(t *testing.T) {
	script := `#!/bin/sh
echo "Warning: libX deprecated"
echo "loading fonts"
echo '{"profile":{"name":"Jane Doe","phone":"555-1111"},"skills":{"featuredSkills":[{"skill":"Go","rating":4}],"descriptions":["Go, SQL"]}}'
`
	runner, pdf := newTestRunner(t, script, 5*time.Second)

	result, err := runner.Extract(context.Background(), pdf)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if result.Profile.Name != "Jane Doe" {
		t.Errorf("profile name = %q, want %q", result.Profile.Name, "Jane Doe")
	}
	if result.Profile.Phone != "555-1111" {
		t.Errorf("profile phone = %q, want %q", result.Profile.Phone, "555-1111")
	}
	if result.Skills == nil || len(result.Skills.FeaturedSkills) != 1 {
		t.Fatalf("expected one featured skill, got %+v", result.Skills)
	}
	if result.Skills.FeaturedSkills[0].Skill != "Go" {
		t.Errorf("featured skill = %q, want Go", result.Skills.FeaturedSkills[0].Skill)
	}
}

func TestExtractParserReportedError(t *testing.T) {
	script := `#!/bin/sh
echo '{"error":"unreadable pdf"}'
exit 1
`
	runner, pdf := newTestRunner(t, script, 5*time.Second)

	_, err := runner.Extract(context.Background(), pdf)

	var perr *ParserError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParserError", err)
	}
	if perr.Message != "unreadable pdf" {
		t.Errorf("message = %q, want %q", perr.Message, "unreadable pdf")
	}
}

func TestExtractErrorMarkerWithZeroExit(t *testing.T) {
	script := `#!/bin/sh
echo '{"error":"missing text layer"}'
`
	runner, pdf := newTestRunner(t, script, 5*time.Second)

	_, err := runner.Extract(context.Background(), pdf)

	var perr *ParserError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParserError", err)
	}
	if perr.Message != "missing text layer" {
		t.Errorf("message = %q, want %q", perr.Message, "missing text layer")
	}
}

func TestExtractTimeoutForceTerminates(t *testing.T) {
	script := `#!/bin/sh
sleep 30
`
	runner, pdf := newTestRunner(t, script, 200*time.Millisecond)

	start := time.Now()
	_, err := runner.Extract(context.Background(), pdf)
	elapsed := time.Since(start)

	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("error = %v, want ErrTimeout", err)
	}
	if elapsed > 3*time.Second {
		t.Errorf("Extract took %v, expected force-kill near the 200ms deadline", elapsed)
	}
}

func TestExtractMalformedOutput(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"no json at all", "#!/bin/sh\necho 'just some noise'\n"},
		{"truncated json", "#!/bin/sh\necho '{\"profile\": '\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, pdf := newTestRunner(t, tt.script, 5*time.Second)

			_, err := runner.Extract(context.Background(), pdf)

			var merr *MalformedOutputError
			if !errors.As(err, &merr) {
				t.Fatalf("error = %v, want *MalformedOutputError", err)
			}
		})
	}
}

func TestExtractMissingScript(t *testing.T) {
	runner, pdf := newTestRunner(t, "#!/bin/sh\n", 5*time.Second)
	runner.Script = "does-not-exist.sh"

	_, err := runner.Extract(context.Background(), pdf)
	if !errors.Is(err, ErrParserUnavailable) {
		t.Errorf("error = %v, want ErrParserUnavailable", err)
	}
}

func TestExtractMissingInput(t *testing.T) {
	runner, _ := newTestRunner(t, "#!/bin/sh\n", 5*time.Second)

	_, err := runner.Extract(context.Background(), filepath.Join(runner.Dir, "nope.pdf"))
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("error = %v, want ErrInputNotFound", err)
	}
}
