package llm

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestIsTech(t *testing.T) {
	tests := []struct {
		answer   string
		expected bool
	}{
		{"TECH", true},
		{"  tech\n", true},
		{"TECH.", true},
		{"NOT_TECH", false},
		{"not_tech", false},
		{"", false},
		{"I think this is TECH", false},
	}

	for _, tt := range tests {
		if result := IsTech(tt.answer); result != tt.expected {
			t.Errorf("IsTech(%q) = %v, expected %v", tt.answer, result, tt.expected)
		}
	}
}

func TestClassifier_Run_Tech(t *testing.T) {
	fake := newFakeOpenAI(t, "TECH")
	classifier := NewClassifier(fake.client(), "gpt-4.1-mini", true)

	if !classifier.Run(context.Background(), "New Chip Unveiled", "A faster chip") {
		t.Error("Expected TECH answer to be accepted")
	}

	if fake.lastReq.Model != "gpt-4.1-mini" {
		t.Errorf("Expected classifier model, got '%s'", fake.lastReq.Model)
	}
	if len(fake.lastReq.Messages) != 1 {
		t.Fatalf("Expected one message, got %d", len(fake.lastReq.Messages))
	}
	prompt := fake.lastReq.Messages[0].Content
	if !strings.Contains(prompt, "Title: New Chip Unveiled") || !strings.Contains(prompt, "Summary: A faster chip") {
		t.Errorf("Expected prompt to embed title and summary, got: %s", prompt)
	}
	if fake.lastReq.ResponseFormat != nil {
		t.Error("Classifier should not request a structured response")
	}
}

func TestClassifier_Run_NotTech(t *testing.T) {
	fake := newFakeOpenAI(t, "NOT_TECH")
	classifier := NewClassifier(fake.client(), "gpt-4.1-mini", true)

	if classifier.Run(context.Background(), "Comet spotted", "Astronomers observe") {
		t.Error("Expected NOT_TECH answer to be rejected")
	}
}

func TestClassifier_Run_ServiceErrorFailOpen(t *testing.T) {
	fake := newFakeOpenAI(t, "")
	fake.status = http.StatusInternalServerError

	if !NewClassifier(fake.client(), "gpt-4.1-mini", true).Run(context.Background(), "t", "s") {
		t.Error("Expected fail-open classifier to accept on service error")
	}
}

func TestClassifier_Run_ServiceErrorFailClosed(t *testing.T) {
	fake := newFakeOpenAI(t, "")
	fake.status = http.StatusInternalServerError

	if NewClassifier(fake.client(), "gpt-4.1-mini", false).Run(context.Background(), "t", "s") {
		t.Error("Expected fail-closed classifier to reject on service error")
	}
}
