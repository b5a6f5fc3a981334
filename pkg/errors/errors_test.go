// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and the dependency error kinds

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/envman/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "profile_not_found_error",
			code:    errors.ErrProfileNotFound,
			message: "no such profile",
			wantStr: "[PROFILE_NOT_FOUND] no such profile",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid profile name",
			wantStr: "[INVALID_INPUT] invalid profile name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk exploded")
	err := errors.Wrap(cause, errors.ErrProfileIO, "failed to read profile 'work'")

	want := "[PROFILE_IO] failed to read profile 'work': disk exploded"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}

	if errors.Wrap(nil, errors.ErrProfileIO, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.NewProfileNotFound("work")

	if !errors.IsErrorCode(err, errors.ErrProfileNotFound) {
		t.Error("IsErrorCode should match PROFILE_NOT_FOUND")
	}
	if errors.IsErrorCode(err, errors.ErrCircularDependency) {
		t.Error("IsErrorCode should not match a different code")
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain error) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestIsErrorCodeThroughChain(t *testing.T) {
	root := errors.NewProfileNotFound("x")
	chained := errors.Chain("p", errors.Chain("q", root))

	if !errors.IsErrorCode(chained, errors.ErrProfileNotFound) {
		t.Error("IsErrorCode should see through nested chains")
	}
}

func TestNewCircularDependency(t *testing.T) {
	err := errors.NewCircularDependency([]string{"a", "b", "a"})

	want := "[CIRCULAR_DEPENDENCY] Circular dependency detected: a -> b -> a"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	path := errors.CyclePath(err)
	if len(path) != 3 || path[0] != "a" || path[1] != "b" || path[2] != "a" {
		t.Errorf("CyclePath() = %v, want [a b a]", path)
	}

	if errors.CyclePath(errors.NewProfileNotFound("a")) != nil {
		t.Error("CyclePath on a non-cycle error should be nil")
	}
}

func TestNewDependencyNotFound(t *testing.T) {
	err := errors.NewDependencyNotFound("work", "ghost")

	want := "[DEPENDENCY_NOT_FOUND] Profile 'work' references non-existent profile 'ghost'."
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
