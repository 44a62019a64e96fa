package inline_test

import (
	"testing"

	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/inline"
)

// ---------------------------------------------------------------------------
// TestLookupKey - Lookup key derivation
// ---------------------------------------------------------------------------

func TestLookupKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ref       string
		embedHint bool
		want      string
	}{
		{
			name:      "embed hint passes through verbatim",
			ref:       "attachments/My Image.png",
			embedHint: true,
			want:      "attachments/My Image.png",
		},
		{
			name:      "embed hint preserves percent encoding",
			ref:       "My%20Image.png",
			embedHint: true,
			want:      "My%20Image.png",
		},
		{
			name: "plain basename unchanged",
			ref:  "photo.jpg",
			want: "photo.jpg",
		},
		{
			name: "url keeps last path segment",
			ref:  "https://example.com/images/photo.jpg",
			want: "photo.jpg",
		},
		{
			name: "percent encoding decoded",
			ref:  "My%20Image.png",
			want: "My Image.png",
		},
		{
			name: "query string stripped",
			ref:  "photo.jpg?width=300",
			want: "photo.jpg",
		},
		{
			name: "url with query string",
			ref:  "https://example.com/a/b/photo.png?v=2&s=small",
			want: "photo.png",
		},
		{
			name: "decode happens before query strip",
			ref:  "dir/My%20Image.png?x=1",
			want: "My Image.png",
		},
		{
			name: "invalid percent escape kept as-is",
			ref:  "bad%zzname.png",
			want: "bad%zzname.png",
		},
		{
			name: "relative path keeps basename",
			ref:  "../assets/chart.svg",
			want: "chart.svg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := inline.LookupKey(tt.ref, tt.embedHint)
			if got != tt.want {
				t.Errorf("LookupKey(%q, %v) = %q, want %q", tt.ref, tt.embedHint, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsInlined - Data URI detection
// ---------------------------------------------------------------------------

func TestIsInlined(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ref  string
		want bool
	}{
		{name: "data uri", ref: "data:image/png;base64,aGk=", want: true},
		{name: "http url", ref: "https://example.com/a.png", want: false},
		{name: "vault path", ref: "attachments/a.png", want: false},
		{name: "empty", ref: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := inline.IsInlined(tt.ref); got != tt.want {
				t.Errorf("IsInlined(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}
