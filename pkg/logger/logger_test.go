package logger

import (
	"context"
	"testing"
)

func TestFromContextCarriesAttachedFields(t *testing.T) {
	Init()

	ctx := ContextWithFields(context.Background(), map[string]interface{}{
		"request_id": "abc123",
	})
	ctx = ContextWithFields(ctx, map[string]interface{}{
		"slug": "home",
	})

	entry := FromContext(ctx)
	if entry.Data["request_id"] != "abc123" {
		t.Fatalf("request_id missing from entry: %v", entry.Data)
	}
	if entry.Data["slug"] != "home" {
		t.Fatalf("later fields must merge, got %v", entry.Data)
	}
}

func TestFromContextWithoutFields(t *testing.T) {
	Init()

	entry := FromContext(context.Background())
	if len(entry.Data) != 0 {
		t.Fatalf("expected an empty entry for a bare context, got %v", entry.Data)
	}
}
