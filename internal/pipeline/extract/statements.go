package extract

import "strings"

// Single keywords that signal a diagnostic statement.
var diagnosisCues = []string{
	"निदान", "डायग्नोसिस", "diagnosis",
	"रोग", "बीमारी", "बिमारी",
	"समस्या", "इन्फेक्शन", "infection",
}

// Multi-word diagnostic patterns: every word of a pattern must be present.
// Covers the copula + condition-noun structures of spoken clinical Hindi
// ("यह बुखार का केस है", "आपको वायरल बुखार हुआ है", "हो सकता है").
var diagnosisPhrases = [][]string{
	{"केस", "है"},
	{"केस", "लग"},
	{"आपको", "हुआ", "है"},
	{"आपको", "इन्फेक्शन", "है"},
	{"आपको", "बीमारी", "है"},
	{"रोग", "है"},
	{"इन्फेक्शन", "है"},
	{"हो", "सकता", "है"},
	{"लगता", "है"},
}

// adviceCues signal prescriptive / imperative doctor language: medication
// verbs, restrictions, diet, rest, dosage timing and follow-up. Bare single
// consonants (न, ना, ले) are excluded on purpose: as substrings they fire
// inside unrelated Devanagari words.
var adviceCues = []string{
	"लें", "लेनी", "लेते",
	"करें", "करे", "करना", "कीजिए",
	"मत", "परहेज", "बचें",
	"खाएं", "पीएं", "पिएं", "पियो", "पानी",
	"आराम",
	"सुबह", "दोपहर", "शाम", "रात",
	"दिन में", "खाली पेट", "खाने के बाद",
	"फिर आ", "दिखा", "मिलें", "कम करें",
}

func containsDiagnosisSignal(text string) bool {
	if containsAny(text, diagnosisCues) {
		return true
	}
	for _, phrase := range diagnosisPhrases {
		all := true
		for _, word := range phrase {
			if !strings.Contains(text, word) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}
