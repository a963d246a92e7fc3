package pages

import "testing"

func TestColumnString(t *testing.T) {
	text1 := ""
	text2 := "test"
	text3 := "testme"
	text4 := "testmetest"

	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{text4, 0, ""},
		{text4, 1, "."},
		{text4, 2, ".."},
		{text4, 3, "..."},
		{text4, 4, "t..."},
		{text1, 6, "      "},
		{text2, 6, "test  "},
		{text3, 6, "testme"},
		{text4, 6, "tes..."},
		{text1, -1, ""},
	}

	for _, tt := range tests {
		if got := ColumnString(tt.text, tt.width); got != tt.expected {
			t.Errorf("ColumnString(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.expected)
		}
	}
}
