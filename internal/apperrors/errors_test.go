package apperrors

import (
	"fmt"
	"testing"
)

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"validation", Validation("bad input"), IsValidation},
		{"not found", NotFound("article", "a1"), IsNotFound},
		{"forbidden", Forbidden("nope"), IsForbidden},
		{"already exists", AlreadyExists("dup"), IsAlreadyExists},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.pred(tc.err) {
				t.Error("Expected predicate to match the bare error")
			}
			wrapped := fmt.Errorf("outer: %w", tc.err)
			if !tc.pred(wrapped) {
				t.Error("Expected predicate to match the wrapped error")
			}
			if IsValidation(wrapped) && tc.name != "validation" {
				t.Error("Expected predicates not to cross-match")
			}
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("article", "a1")
	if err.Error() != "article a1 not found" {
		t.Errorf("Unexpected message %q", err.Error())
	}

	bare := &NotFoundError{Resource: "like entry"}
	if bare.Error() != "like entry not found" {
		t.Errorf("Unexpected message %q", bare.Error())
	}
}
