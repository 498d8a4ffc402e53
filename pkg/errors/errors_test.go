// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, codes and exit status mapping

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/redo/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "no_dofile_error",
			code:    errors.ErrNoDofile,
			message: "no dofile",
			wantStr: "no dofile",
		},
		{
			name:    "usage_error",
			code:    errors.ErrUsage,
			message: "missing target",
			wantStr: "missing target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrDofileNotExecutable, "dofile exists but is not executable: %s", "x.do")

	want := "dofile exists but is not executable: x.do"
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileRename, "rename")

		if err.Code != errors.ErrFileRename {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrFileRename)
		}

		if !stderrors.Is(err, baseErr) {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "rename: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrFileStat, "stat %s", "out.o.do")
		if got := err.Error(); got != "stat out.o.do: permission denied" {
			t.Errorf("Error() = %q", got)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrRecipeFailed, "recipe failed").
		WithDetail("exit_code", 3).
		WithDetail("dofile", "out.do")

	if err.Details["exit_code"] != 3 {
		t.Errorf("WithDetail() exit_code = %v, want 3", err.Details["exit_code"])
	}
	if err.Details["dofile"] != "out.do" {
		t.Errorf("WithDetail() dofile = %v, want out.do", err.Details["dofile"])
	}
	if got := errors.GetErrorDetails(err); got["dofile"] != "out.do" {
		t.Errorf("GetErrorDetails() = %v", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNoDofile, "error 1")
	err2 := errors.New(errors.ErrNoDofile, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if stderrors.Is(err1, err3) {
		t.Error("errors.Is() should not match different codes")
	}
}

func TestGetErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", errors.New(errors.ErrNoParent, "no REDO_PARENT"))

	if got := errors.GetErrorCode(wrapped); got != errors.ErrNoParent {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrNoParent)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for plain errors")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"usage", errors.New(errors.ErrUsage, "missing target"), 2},
		{"wrapped_usage", fmt.Errorf("cli: %w", errors.New(errors.ErrUsage, "x")), 2},
		{"no_parent", errors.New(errors.ErrNoParent, "no REDO_PARENT"), 1},
		{"recipe_failed", errors.New(errors.ErrRecipeFailed, "recipe failed"), 1},
		{"plain", stderrors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
