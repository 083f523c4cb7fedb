package markov

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestGenerateStream(t *testing.T) {
	g := newTestGraph(t, words("the cat sat"))

	stream, err := g.GenerateStream(context.Background())
	if err != nil {
		t.Fatalf("GenerateStream() failed: %v", err)
	}

	var got []string
	for token := range stream {
		got = append(got, token)
	}

	want := []string{"the", "cat", "sat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("streamed sequence = %v, want %v", got, want)
	}
}

func TestGenerateStreamMaxLength(t *testing.T) {
	g := newTestGraph(t, []string{"la", "la", "la", "la", "la", "la", "la", "la"})

	stream, err := g.GenerateStream(context.Background(), WithMaxLength(2))
	if err != nil {
		t.Fatalf("GenerateStream() failed: %v", err)
	}

	count := 0
	for range stream {
		count++
	}
	if count > 2 {
		t.Errorf("expected at most 2 streamed tokens, got %d", count)
	}
}

func TestGenerateStreamCancel(t *testing.T) {
	g := newTestGraph(t, words("the cat sat"))

	ctx, cancel := context.WithCancel(context.Background())
	stream, err := g.GenerateStream(ctx)
	if err != nil {
		t.Fatalf("GenerateStream() failed: %v", err)
	}
	cancel()

	// The channel must close promptly even if nothing drains it first.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-stream:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("stream did not close after context cancellation")
		}
	}
}

func TestGenerateStreamEmptyGraph(t *testing.T) {
	g := NewGraph()

	_, err := g.GenerateStream(context.Background())
	if !errors.Is(err, ErrEmptyDistribution) {
		t.Errorf("expected ErrEmptyDistribution on an untrained graph, got %v", err)
	}
}
