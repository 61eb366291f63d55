package lexicon

// builtin is the default Hindi/Hinglish clinical vocabulary, used when no
// lexicon file is configured. Longer phrases must stay ahead of any phrase
// they contain within an entry; cross-entry ordering is handled by the
// longest-first index in New.
var builtin = []Entry{
	// Symptoms
	{Canonical: "बुखार", Category: CategorySymptom,
		Variants: []string{"तेज बुखार", "फीवर", "ताप", "fever"}},
	{Canonical: "सिर दर्द", Category: CategorySymptom,
		Variants: []string{"सिरदर्द", "सर दर्द", "headache"}},
	{Canonical: "छाती में दर्द", Category: CategorySymptom,
		Variants: []string{"छाती दर्द", "सीने में दर्द", "chest pain"}},
	{Canonical: "पेट दर्द", Category: CategorySymptom,
		Variants: []string{"पेट में दर्द", "stomach pain"}},
	{Canonical: "खांसी", Category: CategorySymptom,
		Variants: []string{"खासी", "cough"}},
	{Canonical: "कमजोरी", Category: CategorySymptom,
		Variants: []string{"कमज़ोरी", "वीकनेस", "थकान", "weakness"}},
	{Canonical: "उल्टी", Category: CategorySymptom,
		Variants: []string{"उलटी", "vomiting"}},
	{Canonical: "चक्कर", Category: CategorySymptom,
		Variants: []string{"चक्कर आना", "dizziness"}},
	{Canonical: "गले में दर्द", Category: CategorySymptom,
		Variants: []string{"गला खराब", "sore throat"}},
	{Canonical: "सांस फूलना", Category: CategorySymptom,
		Variants: []string{"सांस लेने में दिक्कत", "सांस की तकलीफ"}},
	{Canonical: "जुकाम", Category: CategorySymptom,
		Variants: []string{"सर्दी", "नाक बहना", "cold"}},
	{Canonical: "दस्त", Category: CategorySymptom,
		Variants: []string{"लूज मोशन", "loose motion"}},

	// Medications
	{Canonical: "पैरासिटामोल", Category: CategoryMedication,
		Variants: []string{"पेरासिटामोल", "क्रोसिन", "paracetamol", "crocin"}},
	{Canonical: "सिट्रिज़िन", Category: CategoryMedication,
		Variants: []string{"सेट्रिज़िन", "सिट्रीजीन", "cetirizine"}},
	{Canonical: "एज़िथ्रोमाइसिन", Category: CategoryMedication,
		Variants: []string{"azithromycin"}},
	{Canonical: "आइबुप्रोफेन", Category: CategoryMedication,
		Variants: []string{"ब्रूफेन", "ibuprofen"}},
	{Canonical: "ओआरएस", Category: CategoryMedication,
		Variants: []string{"ors"}},

	// Fillers: pure conversational noise, no clinical meaning
	{Canonical: "आवाज आ रही है", Category: CategoryFiller,
		Variants: []string{"आवाज़ आ रही है"}},
	{Canonical: "हेलो", Category: CategoryFiller, Variants: []string{"हैलो", "hello"}},
	{Canonical: "जी", Category: CategoryFiller},
	{Canonical: "हाँ", Category: CategoryFiller, Variants: []string{"हां"}},
	{Canonical: "ठीक है", Category: CategoryFiller},
	{Canonical: "समझ गया", Category: CategoryFiller, Variants: []string{"समझ गयी"}},
	{Canonical: "अच्छा", Category: CategoryFiller},
	{Canonical: "ओके", Category: CategoryFiller, Variants: []string{"okay"}},
	{Canonical: "प्रोफाइल", Category: CategoryFiller},
	{Canonical: "test", Category: CategoryFiller, Variants: []string{"testing"}},

	// Negation markers, matched inside the extraction window only.
	// Single-consonant forms are deliberately excluded: they match inside
	// unrelated Devanagari words.
	{Canonical: "नहीं", Category: CategoryNegation, Variants: []string{"नही"}},
	{Canonical: "मत", Category: CategoryNegation},
	{Canonical: "बिना", Category: CategoryNegation},
	{Canonical: "not", Category: CategoryNegation},

	// Location markers
	{Canonical: "बाईं तरफ", Category: CategoryLocation,
		Variants: []string{"बायीं तरफ", "बाएं तरफ", "left side"}},
	{Canonical: "दाईं तरफ", Category: CategoryLocation,
		Variants: []string{"दायीं तरफ", "दाएं तरफ", "right side"}},
	{Canonical: "पीठ में", Category: CategoryLocation, Variants: []string{"कमर में"}},
	{Canonical: "पूरे शरीर में", Category: CategoryLocation, Variants: []string{"सारे शरीर में"}},
	{Canonical: "ऊपर", Category: CategoryLocation},
	{Canonical: "नीचे", Category: CategoryLocation},

	// Duration units, canonical form is the English unit name
	{Canonical: "day", Category: CategoryDurationUnit,
		Variants: []string{"दिन", "दिनों", "days"}},
	{Canonical: "week", Category: CategoryDurationUnit,
		Variants: []string{"हफ्ते", "हफ्ता", "हफ्तों", "सप्ताह", "weeks"}},
	{Canonical: "month", Category: CategoryDurationUnit,
		Variants: []string{"महीने", "महीना", "महीनों", "months"}},
	{Canonical: "year", Category: CategoryDurationUnit,
		Variants: []string{"साल", "वर्ष", "years"}},
	{Canonical: "hour", Category: CategoryDurationUnit,
		Variants: []string{"घंटे", "घंटा", "घंटों", "hours"}},
}

// Default returns the built-in lexicon.
func Default() *Lexicon {
	l, err := New(builtin)
	if err != nil {
		// the built-in table is validated by tests
		panic(err)
	}
	return l
}
