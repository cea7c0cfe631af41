// Package extract runs the external resume parser and turns its noisy
// stdout/stderr into a structured extraction result. The parser is an
// untrusted, independently-versioned tool: its output must never corrupt
// structured results and its process must never outlive the timeout.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
)

const DefaultTimeout = 30 * time.Second

var (
	// ErrParserUnavailable means the parser program or script is missing;
	// the subprocess is never launched in that case.
	ErrParserUnavailable = errors.New("resume parser unavailable")

	// ErrTimeout means the subprocess exceeded its deadline and was
	// force-terminated.
	ErrTimeout = errors.New("resume parser timed out")

	// ErrInputNotFound means the PDF to parse does not exist on disk.
	ErrInputNotFound = errors.New("resume file not found")
)

// MalformedOutputError means the parser exited cleanly but its sanitized
// output was empty or not decodable. Output is retained for diagnostics.
type MalformedOutputError struct {
	Output string
	Err    error
}

func (e *MalformedOutputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed parser output: %v", e.Err)
	}
	return "malformed parser output: empty"
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// ParserError carries a human-readable failure message reported by the
// parser itself, as opposed to a failure of the process boundary.
type ParserError struct {
	Message string
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("resume parser reported an error: %s", e.Message)
}

// Runner invokes the parser as `<runtime> <args...> <script> <pdfPath>` with
// the working directory fixed to the parser's installation directory and
// stdout+stderr merged into one stream.
type Runner struct {
	Runtime string
	Args    []string
	Script  string
	Dir     string
	Timeout time.Duration
	Logger  zerolog.Logger
}

func NewRunner(runtime string, args []string, script, dir string, timeout time.Duration, logger zerolog.Logger) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{
		Runtime: runtime,
		Args:    args,
		Script:  script,
		Dir:     dir,
		Timeout: timeout,
		Logger:  logger,
	}
}

// Extract parses the PDF at pdfPath. It blocks the calling goroutine for the
// subprocess's lifetime, bounded by the configured timeout.
func (r *Runner) Extract(ctx context.Context, pdfPath string) (*domain.ExtractionResult, error) {
	scriptPath := filepath.Join(r.Dir, r.Script)
	if _, err := os.Stat(scriptPath); err != nil {
		return nil, fmt.Errorf("%w: script %s", ErrParserUnavailable, scriptPath)
	}
	if _, err := os.Stat(pdfPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, pdfPath)
	}

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	args := append(append([]string{}, r.Args...), scriptPath, pdfPath)
	cmd := exec.CommandContext(ctx, r.Runtime, args...)
	cmd.Dir = r.Dir
	// A killed parser can leave grandchildren holding the output pipe open;
	// WaitDelay stops the merged-output read from waiting on them forever.
	cmd.WaitDelay = 2 * time.Second

	r.Logger.Info().Str("pdf", pdfPath).Msg("executing resume parser")

	// CommandContext kills the child when the deadline fires, so the merged
	// output read cannot block indefinitely.
	raw, runErr := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		r.Logger.Error().Str("pdf", pdfPath).Dur("timeout", r.Timeout).Msg("resume parser force-terminated")
		return nil, ErrTimeout
	}
	if runErr != nil {
		if errors.Is(runErr, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: runtime %q", ErrParserUnavailable, r.Runtime)
		}
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, fmt.Errorf("%w: %v", ErrParserUnavailable, runErr)
		}
		// Non-zero exit: fall through, the output may carry the reason.
	}

	sanitized := SanitizeOutput(string(raw))

	if runErr != nil || hasErrorMarker(sanitized) {
		return nil, &ParserError{Message: parserMessage(sanitized, string(raw))}
	}

	if sanitized == "" {
		return nil, &MalformedOutputError{Output: string(raw)}
	}

	var result domain.ExtractionResult
	if err := json.Unmarshal([]byte(sanitized), &result); err != nil {
		return nil, &MalformedOutputError{Output: sanitized, Err: err}
	}

	return &result, nil
}

// parserMessage extracts the message from an {"error": "..."} payload,
// falling back to the raw text when that shape does not decode.
func parserMessage(sanitized, raw string) string {
	candidate := sanitized
	if candidate == "" {
		candidate = raw
	}

	var report struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(candidate), &report); err == nil && report.Error != "" {
		return report.Error
	}
	return candidate
}
