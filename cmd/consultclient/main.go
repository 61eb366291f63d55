package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

type createResponse struct {
	ConsultationID string `json:"consultationId"`
}

type utteranceRequest struct {
	Text        string `json:"text"`
	SpeakerHint string `json:"speakerHint,omitempty"`
}

// A scripted OPD consultation in Hindi, alternating patient and doctor turns.
var script = []utteranceRequest{
	{Text: "डॉक्टर साहब मुझे बुखार है और सिर दर्द भी है", SpeakerHint: "patient"},
	{Text: "छाती में दर्द है, बाईं तरफ, 3 दिन से"},
	{Text: "खांसी भी आ रही है लेकिन उल्टी नहीं है"},
	{Text: "मैं आपकी जांच करता हूं", SpeakerHint: "doctor"},
	{Text: "यह वायरल बुखार का केस लग रहा है"},
	{Text: "पैरासिटामोल दिन में दो बार लें, आराम करें, पानी ज्यादा पीएं"},
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base URL")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	// Start a consultation
	resp, err := client.Post(*baseURL+"/v1/consultations", "application/json", nil)
	if err != nil {
		log.Fatalf("failed to create consultation: %v", err)
	}
	var created createResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		log.Fatalf("failed to decode create response: %v", err)
	}
	resp.Body.Close()
	log.Printf("Consultation created: %s", created.ConsultationID)

	// Replay the scripted utterances
	for i, u := range script {
		body, _ := json.Marshal(u)
		url := fmt.Sprintf("%s/v1/consultations/%s/utterances", *baseURL, created.ConsultationID)
		resp, err := client.Post(url, "application/json", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("failed to send utterance %d: %v", i, err)
		}
		segments, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		log.Printf("Utterance %d labeled: %s", i, segments)
		time.Sleep(200 * time.Millisecond)
	}

	// Finalize and print the report
	url := fmt.Sprintf("%s/v1/consultations/%s/report", *baseURL, created.ConsultationID)
	resp, err = client.Post(url, "application/json", nil)
	if err != nil {
		log.Fatalf("failed to finalize consultation: %v", err)
	}
	report, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, report, "", "  "); err != nil {
		log.Fatalf("failed to parse report: %v", err)
	}
	fmt.Println(pretty.String())
}
