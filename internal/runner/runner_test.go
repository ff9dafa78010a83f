package runner

import (
	"errors"
	"testing"
)

func TestGoDeliversResult(t *testing.T) {
	res := <-Go(func() (string, error) {
		return "done", nil
	})
	if res.Err != nil || res.Message != "done" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestGoPropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	res := <-Go(func() (string, error) {
		return "", wantErr
	})
	if !errors.Is(res.Err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, res.Err)
	}
}

func TestGoRecoversPanic(t *testing.T) {
	res := <-Go(func() (string, error) {
		panic("task blew up")
	})
	if res.Err == nil {
		t.Fatal("expected an error from a panicking task")
	}
}
