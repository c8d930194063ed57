package extractor

import (
	"testing"
)

func TestExtractPDFRejectsGarbage(t *testing.T) {
	_, err := ExtractPDF([]byte("this is not a pdf document"))
	if err == nil {
		t.Fatal("expected error for non-PDF input, got nil")
	}
}

func TestExtractPDFRejectsEmpty(t *testing.T) {
	_, err := ExtractPDF(nil)
	if err == nil {
		t.Fatal("expected error for empty input, got nil")
	}
}
