package validator

import (
	"strings"
	"testing"
)

func TestSanitizeHTMLStripsScriptKeepsMarkup(t *testing.T) {
	out := SanitizeHTML(`<p>fine</p><script>alert(1)</script>`)
	if !strings.Contains(out, "<p>fine</p>") {
		t.Fatalf("safe markup must survive, got %q", out)
	}
	if strings.Contains(out, "script") {
		t.Fatalf("script must be stripped, got %q", out)
	}
}

func TestSanitizeStringStripsAllMarkup(t *testing.T) {
	out := SanitizeString(`<b>Bold</b> title`)
	if out != "Bold title" {
		t.Fatalf("expected plain text, got %q", out)
	}
}

func TestCustomValidations(t *testing.T) {
	Init()

	type payload struct {
		Title string `validate:"no_html"`
		Slug  string `validate:"omitempty,slug"`
		Type  string `validate:"omitempty,blocktype"`
	}

	if err := Validate(payload{Title: "plain", Slug: "my-page", Type: "spec-table"}); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
	if err := Validate(payload{Title: "<img src=x>"}); err == nil {
		t.Fatalf("expected no_html to reject markup")
	}
	if err := Validate(payload{Title: "ok", Slug: "Bad Slug"}); err == nil {
		t.Fatalf("expected slug validation to reject spaces and uppercase")
	}
	if err := Validate(payload{Title: "ok", Type: "1bad"}); err == nil {
		t.Fatalf("expected blocktype validation to reject leading digit")
	}
}
