package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Demographic capture from patient speech: explicit English commands, Hindi
// explicit phrases, Hindi self-introduction. Absent fields stay absent.

var enNamePattern = regexp.MustCompile(`(?i)patient\s+name\s*(?:is\s*)?([a-zA-Z]+)`)

var hiNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`patient\s+ka\s+naam\s+(\S+)`),
	regexp.MustCompile(`मरीज\s+का\s+नाम\s+(\S+)`),
	regexp.MustCompile(`मेरा\s+नाम\s+(\S+)`),
	regexp.MustCompile(`नाम\s+(\S+)\s+है`),
	regexp.MustCompile(`पेशेंट\s+नेम\s+(\S+)`),
}

var hiSelfNamePattern = regexp.MustCompile(`मैं\s+(\S+)\s+(?:हूँ|हूं)`)

var agePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)patient\s+age\s*(?:is\s*)?(\d{1,3})`),
	regexp.MustCompile(`मेरी\s+उम्र\s*(\d{1,3})`),
	regexp.MustCompile(`उम्र\s*(\d{1,3})`),
	regexp.MustCompile(`(\d{1,3})\s*साल`),
}

// hindiNumberWords covers the spoken numbers commonly used for age.
var hindiNumberWords = map[string]int{
	"एक": 1, "दो": 2, "तीन": 3, "चार": 4, "पांच": 5,
	"छह": 6, "सात": 7, "आठ": 8, "नौ": 9, "दस": 10,
	"ग्यारह": 11, "बारह": 12, "तेरह": 13, "चौदह": 14, "पंद्रह": 15,
	"सोलह": 16, "सत्रह": 17, "अठारह": 18, "उन्नीस": 19, "बीस": 20,
	"इक्कीस": 21, "बाईस": 22, "तेईस": 23, "चौबीस": 24, "पच्चीस": 25,
	"छब्बीस": 26, "सत्ताईस": 27, "अट्ठाईस": 28, "उनतीस": 29, "तीस": 30,
	"इकतीस": 31, "बत्तीस": 32, "तैंतीस": 33, "चौंतीस": 34, "पैंतीस": 35,
	"छत्तीस": 36, "सैंतीस": 37, "अड़तीस": 38, "उनतालीस": 39, "चालीस": 40,
	"पैंतालीस": 45, "पचास": 50, "पचपन": 55, "साठ": 60, "पैंसठ": 65,
	"सत्तर": 70, "पचहत्तर": 75, "अस्सी": 80, "पचासी": 85, "नब्बे": 90,
}

// PatientName extracts the patient's name from the session's patient text.
// Returns "" when no pattern matches.
func PatientName(text string) string {
	if text == "" {
		return ""
	}
	if m := enNamePattern.FindStringSubmatch(text); m != nil {
		if name := strings.TrimSpace(m[1]); len(name) >= 2 {
			return name
		}
	}
	for _, pat := range hiNamePatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			if name := strings.TrimSpace(m[1]); len([]rune(name)) >= 2 {
				return name
			}
		}
	}
	if m := hiSelfNamePattern.FindStringSubmatch(text); m != nil {
		if name := strings.TrimSpace(m[1]); len([]rune(name)) >= 2 {
			return name
		}
	}
	return ""
}

// PatientAge extracts the patient's age, supporting numeric and spoken Hindi
// numbers. Returns 0 when no pattern matches or the value is implausible.
func PatientAge(text string) int {
	if text == "" {
		return 0
	}
	for _, pat := range agePatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			if age, err := strconv.Atoi(m[1]); err == nil && age > 0 && age < 120 {
				return age
			}
		}
	}
	for word, value := range hindiNumberWords {
		if strings.Contains(text, word+" साल") || strings.Contains(text, word+" वर्ष") {
			if value > 0 && value < 120 {
				return value
			}
		}
	}
	return 0
}
