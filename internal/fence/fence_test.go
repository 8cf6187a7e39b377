package fence

import (
	"testing"
)

func TestLiteral_Inspect_TrailingFence(t *testing.T) {
	inspector := New()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "Fence on last line",
			content: "# Title\nSome text\n```",
			want:    true,
		},
		{
			name:    "Fence mid-file only",
			content: "Intro\n```\nMore text",
			want:    false,
		},
		{
			name:    "Bare fence is the whole file",
			content: "```",
			want:    true,
		},
		{
			name:    "Fence followed by final newline",
			content: "# Title\n```\n",
			want:    true,
		},
		{
			name:    "Fence followed by CRLF",
			content: "# Title\r\n```\r\n",
			want:    true,
		},
		{
			name:    "Fence followed by blank line",
			content: "# Title\n```\n\n",
			want:    false,
		},
		{
			name:    "Whitespace around fence is trimmed",
			content: "# Title\n  ```  ",
			want:    true,
		},
		{
			name:    "Tabs around fence are trimmed",
			content: "# Title\n\t```\t",
			want:    true,
		},
		{
			name:    "Language tag disqualifies",
			content: "# Title\n```python",
			want:    false,
		},
		{
			name:    "Four backticks do not match",
			content: "# Title\n````",
			want:    false,
		},
		{
			name:    "Two backticks do not match",
			content: "# Title\n``",
			want:    false,
		},
		{
			name:    "Empty content has no last line",
			content: "",
			want:    false,
		},
		{
			name:    "Single newline yields one empty line",
			content: "\n",
			want:    false,
		},
		{
			name:    "Lone carriage return terminates a line",
			content: "abc\r```",
			want:    true,
		},
		{
			name:    "Fence terminated by lone carriage return",
			content: "abc\n```\r",
			want:    true,
		},
		{
			name:    "Plain prose",
			content: "just some text",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := inspector.Inspect([]byte(tt.content))
			if got := verdict.TrailingFence(); got != tt.want {
				t.Errorf("Inspect(%q).TrailingFence() = %v, want %v (last line %q)",
					tt.content, got, tt.want, verdict.LastLine)
			}
		})
	}
}

func TestLiteral_Inspect_LineAccounting(t *testing.T) {
	inspector := New()

	tests := []struct {
		name         string
		content      string
		wantLines    int
		wantLastLine string
	}{
		{
			name:         "Empty content",
			content:      "",
			wantLines:    0,
			wantLastLine: "",
		},
		{
			name:         "Unterminated single line",
			content:      "hello",
			wantLines:    1,
			wantLastLine: "hello",
		},
		{
			name:         "Final terminator closes the line",
			content:      "hello\n",
			wantLines:    1,
			wantLastLine: "hello",
		},
		{
			name:         "Blank line after terminator",
			content:      "hello\n\n",
			wantLines:    2,
			wantLastLine: "",
		},
		{
			name:         "CRLF counts as one terminator",
			content:      "a\r\nb\r\n",
			wantLines:    2,
			wantLastLine: "b",
		},
		{
			name:         "Lone CR terminates",
			content:      "a\rb",
			wantLines:    2,
			wantLastLine: "b",
		},
		{
			name:         "Consecutive CRs leave an empty middle line",
			content:      "a\r\rb",
			wantLines:    3,
			wantLastLine: "b",
		},
		{
			name:         "Newline only",
			content:      "\n",
			wantLines:    1,
			wantLastLine: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := inspector.Inspect([]byte(tt.content))
			if verdict.Lines != tt.wantLines {
				t.Errorf("Inspect(%q).Lines = %d, want %d", tt.content, verdict.Lines, tt.wantLines)
			}
			if verdict.LastLine != tt.wantLastLine {
				t.Errorf("Inspect(%q).LastLine = %q, want %q", tt.content, verdict.LastLine, tt.wantLastLine)
			}
		})
	}
}

func TestLiteral_Inspect_Deterministic(t *testing.T) {
	inspector := New()
	content := []byte("# Doc\n\n```go\nfmt.Println()\n```")

	first := inspector.Inspect(content)
	second := inspector.Inspect(content)

	if first != second {
		t.Errorf("Inspect() is not deterministic: %+v != %+v", first, second)
	}
	if !first.TrailingFence() {
		t.Errorf("expected trailing fence for %q", content)
	}
}
