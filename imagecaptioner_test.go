package imagecaptioner

import (
	"testing"
)

func TestNew(t *testing.T) {
	captioner, err := New("ollama", "http://localhost:11434", "llava")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if captioner == nil {
		t.Error("New() returned nil")
	}
}

func TestNewDefaultURLs(t *testing.T) {
	if _, err := New("ollama", "", "llava"); err != nil {
		t.Errorf("ollama backend with empty URL should use the default: %v", err)
	}

	if _, err := New("llamacpp", "", "openbmb/minicpm-v4.5"); err != nil {
		t.Errorf("llamacpp backend with empty URL should use the default: %v", err)
	}
}

func TestNewUnknownBackend(t *testing.T) {
	if _, err := New("vllm", "", "llava"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestNewVisionClient(t *testing.T) {
	for _, backend := range []string{"ollama", "llamacpp"} {
		client, err := NewVisionClient(backend, "")
		if err != nil {
			t.Errorf("NewVisionClient(%q) failed: %v", backend, err)
		}
		if client == nil {
			t.Errorf("NewVisionClient(%q) returned nil", backend)
		}
	}
}

func TestCleanCaption(t *testing.T) {
	got := CleanCaption("a photo of a dog running")
	if got != "A dog running" {
		t.Errorf("CleanCaption = %q, want %q", got, "A dog running")
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() != Version {
		t.Errorf("GetVersion() = %q, want %q", GetVersion(), Version)
	}
}
