package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "error with cause",
			err: &Error{
				Type:    ErrPersistenceFailure,
				Message: "test message",
				Cause:   errors.New("underlying error"),
			},
			want: "persistence_failure: test message: underlying error",
		},
		{
			name: "error without cause",
			err: &Error{
				Type:    ErrUnsatisfiedPrecondition,
				Message: "test message",
				Cause:   nil,
			},
			want: "unsatisfied_precondition: test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.want {
				t.Errorf("Error.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &Error{
		Type:    ErrInfrastructure,
		Message: "test message",
		Cause:   cause,
	}

	if got := err.Unwrap(); got != cause {
		t.Errorf("Error.Unwrap() = %v, want %v", got, cause)
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is() should find the cause through Unwrap")
	}
}

func TestTypeChecks(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{
			name:  "unsatisfied precondition matches",
			err:   NewUnsatisfiedPreconditionError("no namespace", nil),
			check: IsUnsatisfiedPrecondition,
			want:  true,
		},
		{
			name:  "persistence failure matches",
			err:   NewPersistenceFailureError("store down", errors.New("boom")),
			check: IsPersistenceFailure,
			want:  true,
		},
		{
			name:  "not found matches",
			err:   NewNotFoundError("user missing", nil),
			check: IsNotFound,
			want:  true,
		},
		{
			name:  "server matches",
			err:   NewServerError("lookup failed", nil),
			check: IsServer,
			want:  true,
		},
		{
			name:  "infrastructure matches",
			err:   NewInfrastructureError("kube down", nil),
			check: IsInfrastructure,
			want:  true,
		},
		{
			name:  "different type does not match",
			err:   NewPersistenceFailureError("store down", nil),
			check: IsUnsatisfiedPrecondition,
			want:  false,
		},
		{
			name:  "plain error does not match",
			err:   errors.New("plain"),
			check: IsPersistenceFailure,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("check = %v, want %v", got, tt.want)
			}
		})
	}
}
