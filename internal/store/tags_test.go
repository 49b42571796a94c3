package store_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/joestump/worklog/internal/store"
	"pgregory.net/rapid"
)

func TestJoinTags(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		want    string
		wantErr bool
	}{
		{"nil", nil, "", false},
		{"empty", []string{}, "", false},
		{"single", []string{"work"}, "work", false},
		{"ordered", []string{"y", "x"}, "y|x", false},
		{"spaces kept", []string{"deep work", "x"}, "deep work|x", false},
		{"delimiter", []string{"a|b"}, "", true},
		{"empty tag", []string{"a", ""}, "", true},
		{"too long", []string{strings.Repeat("a", 128)}, "", true},
		{"exactly max", []string{strings.Repeat("a", 127)}, strings.Repeat("a", 127), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.JoinTags(tt.tags)
			if tt.wantErr {
				if !errors.Is(err, store.ErrInvalidTag) {
					t.Fatalf("JoinTags(%q) err = %v, want ErrInvalidTag", tt.tags, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("JoinTags(%q): %v", tt.tags, err)
			}
			if got != tt.want {
				t.Errorf("JoinTags(%q) = %q, want %q", tt.tags, got, tt.want)
			}
		})
	}
}

func TestSplitTags_Empty(t *testing.T) {
	got := store.SplitTags("")
	if got == nil || len(got) != 0 {
		t.Errorf("SplitTags(\"\") = %#v, want empty non-nil slice", got)
	}
}

func TestTags_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tags := rapid.SliceOfN(rapid.StringMatching(`[a-z0-9 ]{1,8}`), 0, 10).Draw(t, "tags")

		joined, err := store.JoinTags(tags)
		if err != nil {
			t.Fatalf("JoinTags(%q): %v", tags, err)
		}
		got := store.SplitTags(joined)
		if len(got) != len(tags) {
			t.Fatalf("round trip len = %d, want %d (%q)", len(got), len(tags), joined)
		}
		for i := range tags {
			if got[i] != tags[i] {
				t.Fatalf("round trip [%d] = %q, want %q", i, got[i], tags[i])
			}
		}
	})
}
