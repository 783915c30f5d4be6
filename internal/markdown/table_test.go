package markdown

import "testing"

func TestHasTable(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "genuine table",
			content: "| Name | Value |\n| --- | --- |\n| a | 1 |\n",
			want:    true,
		},
		{
			name:    "prose with a pipe character",
			content: "This sentence uses a | pipe but is not a table.",
			want:    false,
		},
		{
			name:    "empty content",
			content: "",
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasTable(tt.content); got != tt.want {
				t.Errorf("HasTable(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}
