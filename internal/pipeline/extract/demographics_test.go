package extract

import "testing"

func TestPatientName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"english command", "patient name is Ramesh", "Ramesh"},
		{"hinglish", "patient ka naam ramesh", "ramesh"},
		{"hindi explicit", "मरीज का नाम रमेश", "रमेश"},
		{"self introduction", "मेरा नाम रमेश है", "रमेश"},
		{"main hoon form", "मैं रमेश हूं", "रमेश"},
		{"absent", "मुझे बुखार है", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PatientName(tt.text); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPatientAge(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"english command", "patient age is 42", 42},
		{"hindi explicit", "मेरी उम्र 30 साल है", 30},
		{"digits with saal", "35 साल का हूं", 35},
		{"spoken number", "मैं तीस साल का हूं", 30},
		{"implausible", "उम्र 250", 0},
		{"absent", "मुझे बुखार है", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PatientAge(tt.text); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
