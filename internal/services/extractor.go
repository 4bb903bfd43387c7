package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/davyken/Job-Fusion/internal/apperrors"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDOC  = "application/msword"
)

// DocumentExtractor turns an uploaded CV blob into plain text.
type DocumentExtractor interface {
	ExtractText(data []byte, mimeType string) (string, error)
}

type documentExtractor struct{}

func NewDocumentExtractor() DocumentExtractor {
	return &documentExtractor{}
}

// ExtractText implements DocumentExtractor. Unknown types fall back to
// reading the blob as raw text; the result may be garbage but extraction
// itself does not fail. Empty text is a valid result.
func (e *documentExtractor) ExtractText(data []byte, mimeType string) (string, error) {
	switch mimeType {
	case MimePDF:
		return e.extractPDF(data)
	case MimeDOCX:
		return e.extractDOCX(data)
	case MimeDOC:
		return "", fmt.Errorf("legacy .doc is not supported: %w", apperrors.ErrUnsupportedFormat)
	default:
		return string(data), nil
	}
}

func (e *documentExtractor) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrExtractionFailed, err)
	}

	var pages []string
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest of the document.
			continue
		}

		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}

func (e *documentExtractor) extractDOCX(data []byte) (string, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrExtractionFailed, err)
	}

	var document io.ReadCloser
	for _, file := range zipReader.File {
		if file.Name == "word/document.xml" {
			if document, err = file.Open(); err != nil {
				return "", fmt.Errorf("%w: %v", apperrors.ErrExtractionFailed, err)
			}
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("%w: word/document.xml not found", apperrors.ErrExtractionFailed)
	}
	defer document.Close()

	// Collect the <w:t> runs, one line per <w:p> paragraph, styling dropped.
	decoder := xml.NewDecoder(document)
	var textBuilder strings.Builder
	inRun := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", apperrors.ErrExtractionFailed, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inRun = true
			case "tab":
				textBuilder.WriteString(" ")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				textBuilder.WriteString("\n")
			}
		case xml.CharData:
			if inRun {
				textBuilder.Write(t)
			}
		}
	}

	return textBuilder.String(), nil
}

// CleanText normalizes extracted text before it is fed to the model.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
