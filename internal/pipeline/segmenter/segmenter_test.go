package segmenter

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "no boundary",
			input: "मुझे बुखार है",
			want:  []string{"मुझे बुखार है"},
		},
		{
			name:  "comma",
			input: "छाती में दर्द है, बाईं तरफ, 3 दिन से",
			want:  []string{"छाती में दर्द है", "बाईं तरफ", "3 दिन से"},
		},
		{
			name:  "danda",
			input: "मुझे बुखार है। सिर दर्द भी है",
			want:  []string{"मुझे बुखार है", "सिर दर्द भी है"},
		},
		{
			name:  "conjunction",
			input: "मुझे बुखार है और सिर दर्द भी है",
			want:  []string{"मुझे बुखार है", "सिर दर्द भी है"},
		},
		{
			name:  "conjunction inside word is kept",
			input: "कमजोरी और___",
			want:  []string{"कमजोरी और___"},
		},
		{
			name:  "newline",
			input: "मुझे बुखार है\nखांसी भी है",
			want:  []string{"मुझे बुखार है", "खांसी भी है"},
		},
		{
			name:  "question mark",
			input: "दर्द कब से है? तीन दिन से",
			want:  []string{"दर्द कब से है", "तीन दिन से"},
		},
		{
			name:  "mixed delimiters",
			input: "बुखार है, खांसी भी। और उल्टी नहीं",
			want:  []string{"बुखार है", "खांसी भी", "उल्टी नहीं"},
		},
		{
			name:  "adjacent delimiters",
			input: "बुखार,,खांसी",
			want:  []string{"बुखार", "खांसी"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSplit_Empty(t *testing.T) {
	if got := Split(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := Split("   "); got != nil {
		t.Errorf("expected nil for whitespace input, got %v", got)
	}
	if got := Split(",,,"); got != nil {
		t.Errorf("expected nil for delimiter-only input, got %v", got)
	}
}
