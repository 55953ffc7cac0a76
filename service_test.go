package postkit

import (
	"context"
	"strings"
	"testing"
)

func TestEditor_Preview_Golden(t *testing.T) {
	t.Parallel()

	ed := New()
	got, err := ed.Preview(context.Background(), "# Title\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}

	want := "<h1 id=\"title\">Title</h1>\n<p>Some <strong>bold</strong> text.</p>\n"
	if got != want {
		t.Errorf("Preview() = %q, want %q", got, want)
	}
}

func TestEditor_Preview_NeverFails(t *testing.T) {
	t.Parallel()

	ed := New()
	inputs := []string{
		"",
		"just text",
		"**unclosed",
		strings.Repeat("]", 300) + strings.Repeat("[", 300),
		"```\nunclosed fence",
		"<figure><img src=\"a\"></figure",
		"\x00",
	}

	for _, input := range inputs {
		if _, err := ed.Preview(context.Background(), input); err != nil {
			t.Errorf("Preview(%q) unexpected error: %v", input, err)
		}
	}
}

func TestEditor_Preview_FigurePipeline(t *testing.T) {
	t.Parallel()

	ed := New()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "markdown image is wrapped with caption from alt",
			input: "![a nice view](view.jpg)",
			wantContains: []string{
				"<figure>",
				`src="view.jpg"`,
				"<figcaption>a nice view</figcaption>",
			},
		},
		{
			name:  "raw figure block survives end to end",
			input: "<figure>\n<img src=\"pic.jpg\" alt=\"pic\">\n<figcaption>Photo by <a href=\"https://x\">Jane</a></figcaption>\n</figure>",
			wantContains: []string{
				"<figure>",
				`src="pic.jpg"`,
				`<a href="https://x"`,
				"Jane",
			},
			wantNot: []string{"&lt;a"},
		},
		{
			name:  "escaped credit anchor is repaired and kept through sanitization",
			input: "<figure>\n<img src=\"pic.jpg\" alt=\"pic\">\n<figcaption>Photo by &lt;a href=\"https://x\"&gt;Jane&lt;/a&gt;</figcaption>\n</figure>",
			wantContains: []string{
				`src="pic.jpg"`,
				`<a href="https://x"`,
				"Jane",
			},
			wantNot: []string{"&lt;a"},
		},
		{
			name:  "script in raw HTML is stripped",
			input: "hello\n\n<script>alert(1)</script>",
			wantContains: []string{
				"hello",
			},
			wantNot: []string{"<script", "alert(1)"},
		},
		{
			name:  "escaped markup in prose stays escaped",
			input: "type `<b>` to embolden, or \\<b\\> literally",
			wantNot: []string{
				"<b>",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ed.Preview(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Preview() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Preview() missing %q in:\n%s", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("Preview() unexpectedly contains %q in:\n%s", not, got)
				}
			}
		})
	}
}

func TestEditor_Preview_Cache(t *testing.T) {
	t.Parallel()

	ed := New(WithPreviewCache())
	input := "# Cached\n\nbody"

	first, err := ed.Preview(context.Background(), input)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	second, err := ed.Preview(context.Background(), input)
	if err != nil {
		t.Fatalf("Preview() (cached) error = %v", err)
	}
	if first != second {
		t.Errorf("cached preview differs:\nfirst:  %s\nsecond: %s", first, second)
	}

	// A different buffer must not hit the same entry.
	other, err := ed.Preview(context.Background(), "# Other")
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if other == first {
		t.Error("distinct buffers produced identical previews")
	}
}

func TestEditor_Preview_CancelledContext(t *testing.T) {
	t.Parallel()

	ed := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ed.Preview(ctx, "# hi"); err == nil {
		t.Error("Preview() with cancelled context should return error")
	}
}
