package commands

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

type testMessage struct {
	valid bool
}

func (testMessage) Type() string { return "booklist.test" }

func (m testMessage) Validate() error {
	if !m.valid {
		return errors.New("invalid message")
	}
	return nil
}

func TestHandlerExecutesFunction(t *testing.T) {
	called := false
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	if err := handler.Execute(context.Background(), testMessage{valid: true}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !called {
		t.Fatal("expected handler function to run")
	}
}

func TestHandlerWrapsValidationError(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		t.Fatal("handler must not run for invalid messages")
		return nil
	})

	err := handler.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	boom := errors.New("boom")
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return boom
	})

	err := handler.Execute(context.Background(), testMessage{valid: true})
	if err == nil {
		t.Fatal("expected execution error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestHandlerKeepsCategorizedErrors(t *testing.T) {
	tagged := goerrors.New("source missing", goerrors.CategoryNotFound)
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return tagged
	})

	err := handler.Execute(context.Background(), testMessage{valid: true})
	if !goerrors.IsCategory(err, goerrors.CategoryNotFound) {
		t.Fatalf("expected original category preserved, got %v", err)
	}
}

func TestHandlerCanceledContext(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Execute(ctx, testMessage{valid: true})
	if err == nil {
		t.Fatal("expected context error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerNilContext(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		if ctx == nil {
			t.Fatal("expected non-nil context")
		}
		return nil
	})

	var nilCtx context.Context
	if err := handler.Execute(nilCtx, testMessage{valid: true}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}
