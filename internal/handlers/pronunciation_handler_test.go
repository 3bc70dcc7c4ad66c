package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
)

// fixedTranscriber returns the same recognized text for every recording
type fixedTranscriber struct {
	text string
}

func (f fixedTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	return f.text, nil
}

func pronunciationRequest(t *testing.T, targetWord, contentType string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if targetWord != "" {
		if err := writer.WriteField("target_word", targetWord); err != nil {
			t.Fatal(err)
		}
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="audio_file"; filename="attempt.webm"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("fake-audio"))
	writer.Close()

	req := httptest.NewRequest("POST", "/pronunciation/evaluate", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestPronunciationEvaluate(t *testing.T) {
	handler := NewPronunciationHandler(fixedTranscriber{text: "cat"}, nil, 10*1024*1024)

	recorder := httptest.NewRecorder()
	handler.Evaluate(recorder, pronunciationRequest(t, "cat", "audio/webm"))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["score"].(float64) != 100 {
		t.Errorf("expected score 100, got %v", body["score"])
	}
	if body["recognized_text"] != "cat" {
		t.Errorf("expected recognized text 'cat', got %v", body["recognized_text"])
	}
	if body["feedback"] != "Perfect pronunciation! Great job!" {
		t.Errorf("unexpected feedback %v", body["feedback"])
	}
}

func TestPronunciationEvaluateWithoutTranscriber(t *testing.T) {
	handler := NewPronunciationHandler(nil, nil, 10*1024*1024)

	recorder := httptest.NewRecorder()
	handler.Evaluate(recorder, pronunciationRequest(t, "cat", "audio/webm"))

	if recorder.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", recorder.Code)
	}
}

func TestPronunciationEvaluateMissingTarget(t *testing.T) {
	handler := NewPronunciationHandler(fixedTranscriber{text: "cat"}, nil, 10*1024*1024)

	recorder := httptest.NewRecorder()
	handler.Evaluate(recorder, pronunciationRequest(t, "", "audio/webm"))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", recorder.Code)
	}
}

func TestPronunciationEvaluateRejectsNonAudio(t *testing.T) {
	handler := NewPronunciationHandler(fixedTranscriber{text: "cat"}, nil, 10*1024*1024)

	recorder := httptest.NewRecorder()
	handler.Evaluate(recorder, pronunciationRequest(t, "cat", "application/pdf"))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", recorder.Code, recorder.Body.String())
	}
}
