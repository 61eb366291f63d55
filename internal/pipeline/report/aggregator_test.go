package report

import (
	"testing"

	"opd-extraction-service/internal/lexicon"
	"opd-extraction-service/internal/models"
)

func newTestAggregator(t *testing.T) *Aggregator {
	t.Helper()
	return New(lexicon.Default(), Config{})
}

func ingest(t *testing.T, a *Aggregator, text string) IngestResult {
	t.Helper()
	res, err := a.Ingest(models.Utterance{Text: text})
	if err != nil {
		t.Fatalf("ingest %q: unexpected error: %v", text, err)
	}
	return res
}

func TestIngest_EmptyUtterance(t *testing.T) {
	a := newTestAggregator(t)

	res := ingest(t, a, "   ")
	if len(res.Segments) != 0 {
		t.Errorf("expected no segments, got %v", res.Segments)
	}
}

func TestIngest_FillerOnlyUtterance(t *testing.T) {
	a := newTestAggregator(t)

	res := ingest(t, a, "हेलो हेलो आवाज आ रही है")
	if len(res.Segments) != 0 {
		t.Errorf("expected filler to produce no segments, got %v", res.Segments)
	}
	if a.Turns() != 0 {
		t.Errorf("expected no turns, got %d", a.Turns())
	}
}

func TestIngest_LabelsSegmentsInOrder(t *testing.T) {
	a := newTestAggregator(t)

	res := ingest(t, a, "मुझे बुखार है, आराम करें")
	if len(res.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %v", res.Segments)
	}
	if res.Segments[0].Ordinal != 0 || res.Segments[1].Ordinal != 1 {
		t.Errorf("expected ordinals 0,1, got %d,%d", res.Segments[0].Ordinal, res.Segments[1].Ordinal)
	}
	if res.Segments[0].Speaker != models.SpeakerPatient {
		t.Errorf("expected patient, got %s", res.Segments[0].Speaker)
	}
	if res.Segments[1].Speaker != models.SpeakerDoctor {
		t.Errorf("expected doctor, got %s", res.Segments[1].Speaker)
	}
}

func TestIngest_CompoundComplaint(t *testing.T) {
	a := newTestAggregator(t)

	// location and duration arrive as separate clauses after the symptom
	ingest(t, a, "छाती में दर्द है, बाईं तरफ, 3 दिन से")
	rep := a.Finalize()

	if len(rep.Symptoms) != 1 {
		t.Fatalf("expected 1 symptom, got %v", rep.Symptoms)
	}
	s := rep.Symptoms[0]
	if s.Name != "छाती में दर्द" {
		t.Errorf("expected छाती में दर्द, got %s", s.Name)
	}
	if s.Location != "बाईं तरफ" {
		t.Errorf("expected location बाईं तरफ, got %q", s.Location)
	}
	if s.Duration != "3 दिन से" {
		t.Errorf("expected duration 3 दिन से, got %q", s.Duration)
	}
	if s.DurationUnit != "day" {
		t.Errorf("expected unit day, got %q", s.DurationUnit)
	}
}

func TestIngest_PendingDurationAttachesForward(t *testing.T) {
	a := newTestAggregator(t)

	// duration clause arrives before any symptom was recorded
	ingest(t, a, "मुझे 2 दिन से, बुखार है")
	rep := a.Finalize()

	if len(rep.Symptoms) != 1 {
		t.Fatalf("expected 1 symptom, got %v", rep.Symptoms)
	}
	if rep.Symptoms[0].Duration != "2 दिन से" {
		t.Errorf("expected buffered duration to attach, got %q", rep.Symptoms[0].Duration)
	}
}

func TestIngest_NegationIsNotRetroactive(t *testing.T) {
	a := newTestAggregator(t)

	ingest(t, a, "मुझे बुखार है")
	ingest(t, a, "अब बुखार नहीं है")
	rep := a.Finalize()

	if len(rep.Symptoms) != 1 || rep.Symptoms[0].Name != "बुखार" {
		t.Fatalf("expected earlier positive symptom to survive, got %v", rep.Symptoms)
	}
	if len(rep.Negatives) != 1 || rep.Negatives[0] != "बुखार" {
		t.Errorf("expected negative बुखार, got %v", rep.Negatives)
	}
}

func TestIngest_DuplicateSymptomMerges(t *testing.T) {
	a := newTestAggregator(t)

	ingest(t, a, "मुझे बुखार है")
	ingest(t, a, "तेज बुखार है 3 दिन से")
	rep := a.Finalize()

	if len(rep.Symptoms) != 1 {
		t.Fatalf("expected merged symptom, got %v", rep.Symptoms)
	}
	if rep.Symptoms[0].Duration != "3 दिन से" {
		t.Errorf("expected later duration to fill the record, got %q", rep.Symptoms[0].Duration)
	}
}

func TestIngest_SameSymptomDifferentLocations(t *testing.T) {
	a := newTestAggregator(t)

	ingest(t, a, "छाती में दर्द बाईं तरफ")
	ingest(t, a, "छाती में दर्द दाईं तरफ भी")
	rep := a.Finalize()

	if len(rep.Symptoms) != 2 {
		t.Fatalf("expected 2 symptom records, got %v", rep.Symptoms)
	}
}

func TestIngest_DuplicateMedication(t *testing.T) {
	a := newTestAggregator(t)

	ingest(t, a, "मैंने पैरासिटामोल ली थी")
	ingest(t, a, "क्रोसिन भी ली थी")
	rep := a.Finalize()

	// क्रोसिन canonicalizes to पैरासिटामोल: one record
	if len(rep.Medications) != 1 {
		t.Fatalf("expected 1 medication, got %v", rep.Medications)
	}
	if rep.Medications[0].Name != "पैरासिटामोल" {
		t.Errorf("expected पैरासिटामोल, got %s", rep.Medications[0].Name)
	}
}

func TestIngest_AfterFinalize(t *testing.T) {
	a := newTestAggregator(t)

	ingest(t, a, "मुझे बुखार है")
	a.Finalize()

	if _, err := a.Ingest(models.Utterance{Text: "खांसी भी है"}); err != ErrSessionFinalized {
		t.Errorf("expected ErrSessionFinalized, got %v", err)
	}
}

func TestFinalize_Idempotent(t *testing.T) {
	a := newTestAggregator(t)

	ingest(t, a, "मुझे बुखार है")
	first := a.Finalize()
	second := a.Finalize()

	if first != second {
		t.Error("expected repeated Finalize to return the same frozen report")
	}
}

func TestFinalize_EmptySession(t *testing.T) {
	a := newTestAggregator(t)

	rep := a.Finalize()
	if rep.ChiefComplaint != "" {
		t.Errorf("expected no chief complaint, got %q", rep.ChiefComplaint)
	}
	if rep.Symptoms == nil || rep.Negatives == nil || rep.Medications == nil ||
		rep.Diagnoses == nil || rep.Advice == nil {
		t.Error("expected empty slices, not nil, for a silent session")
	}
}

func TestFinalize_Demographics(t *testing.T) {
	a := newTestAggregator(t)

	ingest(t, a, "मेरा नाम रमेश है")
	ingest(t, a, "मेरी उम्र 30 साल है")
	ingest(t, a, "मुझे बुखार है")
	rep := a.Finalize()

	if rep.PatientName != "रमेश" {
		t.Errorf("expected patient name रमेश, got %q", rep.PatientName)
	}
	if rep.PatientAge != 30 {
		t.Errorf("expected patient age 30, got %d", rep.PatientAge)
	}
}

func TestAggregator_SessionIsolation(t *testing.T) {
	lex := lexicon.Default()
	a := New(lex, Config{})
	b := New(lex, Config{})

	ingest(t, a, "मुझे बुखार है")
	repB := b.Finalize()

	if len(repB.Symptoms) != 0 {
		t.Errorf("expected other session to be unaffected, got %v", repB.Symptoms)
	}
}

// Canonical consultation: six patient segments followed by six doctor
// segments, one utterance each.
func TestConsultation_CanonicalScenario(t *testing.T) {
	a := newTestAggregator(t)

	patient := []string{
		"मुझे बुखार है",
		"सिर दर्द भी है",
		"छाती में दर्द बाईं तरफ",
		"3 दिन से खांसी है",
		"कमजोरी भी है",
		"मैंने पैरासिटामोल ली थी",
	}
	doctor := []string{
		"मैं आपकी जांच करता हूं",
		"यह वायरल बुखार का केस लग रहा है",
		"सिट्रिज़िन रात को लें",
		"आराम करें",
		"पानी ज्यादा पीएं",
		"मिर्च मसाले से परहेज करें",
	}

	for _, u := range patient {
		res := ingest(t, a, u)
		if len(res.Segments) != 1 || res.Segments[0].Speaker != models.SpeakerPatient {
			t.Fatalf("utterance %q: expected one patient segment, got %v", u, res.Segments)
		}
	}
	for _, u := range doctor {
		res := ingest(t, a, u)
		if len(res.Segments) != 1 || res.Segments[0].Speaker != models.SpeakerDoctor {
			t.Fatalf("utterance %q: expected one doctor segment, got %v", u, res.Segments)
		}
	}

	rep := a.Finalize()

	if rep.ChiefComplaint != "बुखार" {
		t.Errorf("expected chief complaint बुखार, got %q", rep.ChiefComplaint)
	}
	if len(rep.Symptoms) != 5 {
		t.Errorf("expected 5 symptoms, got %v", rep.Symptoms)
	}
	if len(rep.Negatives) != 0 {
		t.Errorf("expected no negatives, got %v", rep.Negatives)
	}
	if len(rep.Medications) != 2 {
		t.Errorf("expected 2 medications, got %v", rep.Medications)
	}
	if len(rep.Diagnoses) != 1 {
		t.Errorf("expected 1 diagnosis, got %v", rep.Diagnoses)
	}
	if len(rep.Advice) != 4 {
		t.Errorf("expected 4 advice lines, got %v", rep.Advice)
	}

	chest := rep.Symptoms[2]
	if chest.Name != "छाती में दर्द" || chest.Location != "बाईं तरफ" {
		t.Errorf("expected localised chest pain, got %+v", chest)
	}
	cough := rep.Symptoms[3]
	if cough.Name != "खांसी" || cough.Duration != "3 दिन से" {
		t.Errorf("expected cough with duration, got %+v", cough)
	}
}

// Full consultation walkthrough: greeting noise, multi-clause complaints,
// a negation, patient self-medication, examination small talk, diagnosis
// and a compound prescription.
func TestConsultation_EndToEnd(t *testing.T) {
	a := newTestAggregator(t)

	utterances := []string{
		"हेलो डॉक्टर साहब मुझे बुखार है और सिर दर्द भी है",
		"छाती में दर्द है, बाईं तरफ, 3 दिन से",
		"खांसी भी आ रही है लेकिन उल्टी नहीं है",
		"मैंने कल क्रोसिन ली थी",
		"मैं आपकी जांच करता हूं",
		"यह वायरल बुखार का केस लग रहा है",
		"सिट्रिज़िन सुबह शाम लें, आराम करें और पानी ज्यादा पीएं",
	}
	for _, u := range utterances {
		ingest(t, a, u)
	}

	rep := a.Finalize()

	if rep.ChiefComplaint != "बुखार" {
		t.Errorf("expected chief complaint बुखार, got %q", rep.ChiefComplaint)
	}

	wantSymptoms := []string{"बुखार", "सिर दर्द", "छाती में दर्द", "खांसी"}
	if len(rep.Symptoms) != len(wantSymptoms) {
		t.Fatalf("expected %d symptoms, got %v", len(wantSymptoms), rep.Symptoms)
	}
	for i, want := range wantSymptoms {
		if rep.Symptoms[i].Name != want {
			t.Errorf("symptom %d: expected %s, got %s", i, want, rep.Symptoms[i].Name)
		}
	}

	chest := rep.Symptoms[2]
	if chest.Location != "बाईं तरफ" {
		t.Errorf("expected chest pain location बाईं तरफ, got %q", chest.Location)
	}
	if chest.Duration != "3 दिन से" || chest.DurationUnit != "day" {
		t.Errorf("expected chest pain duration 3 दिन से (day), got %q (%q)", chest.Duration, chest.DurationUnit)
	}

	if len(rep.Negatives) != 1 || rep.Negatives[0] != "उल्टी" {
		t.Errorf("expected negative उल्टी, got %v", rep.Negatives)
	}

	wantMeds := []string{"पैरासिटामोल", "सिट्रिज़िन"}
	if len(rep.Medications) != len(wantMeds) {
		t.Fatalf("expected %d medications, got %v", len(wantMeds), rep.Medications)
	}
	for i, want := range wantMeds {
		if rep.Medications[i].Name != want {
			t.Errorf("medication %d: expected %s, got %s", i, want, rep.Medications[i].Name)
		}
	}

	if len(rep.Diagnoses) != 1 || rep.Diagnoses[0] != "यह वायरल बुखार का केस लग रहा है" {
		t.Errorf("expected verbatim diagnosis, got %v", rep.Diagnoses)
	}

	wantAdvice := []string{"सिट्रिज़िन सुबह शाम लें", "आराम करें", "पानी ज्यादा पीएं"}
	if len(rep.Advice) != len(wantAdvice) {
		t.Fatalf("expected %d advice lines, got %v", len(wantAdvice), rep.Advice)
	}
	for i, want := range wantAdvice {
		if rep.Advice[i] != want {
			t.Errorf("advice %d: expected %q, got %q", i, want, rep.Advice[i])
		}
	}
}
