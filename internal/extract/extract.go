package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Format identifies a supported document format.
type Format string

const (
	FormatText Format = "txt"
	FormatDocx Format = "docx"
	FormatDoc  Format = "doc"
	FormatPDF  Format = "pdf"
)

var (
	// ErrUnsupportedFormat signals a format outside the supported set.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrEmptyInput signals an empty payload.
	ErrEmptyInput = errors.New("empty document payload")
	// ErrExtractionFailed signals that decoding produced no usable text.
	ErrExtractionFailed = errors.New("extraction produced no text")
)

const docGuidance = "DOC files are not directly supported. Please convert to DOCX format or copy the text directly."

// FormatFromFilename maps a file name extension to a Format.
func FormatFromFilename(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return FormatText, true
	case ".docx":
		return FormatDocx, true
	case ".doc":
		return FormatDoc, true
	case ".pdf":
		return FormatPDF, true
	default:
		return "", false
	}
}

// ExtractText pulls plain text from raw document bytes.
// Libraries used: github.com/ledongthuc/pdf (PDF); DOCX is read via archive/zip + encoding/xml.
func ExtractText(data []byte, format Format) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyInput
	}
	switch format {
	case FormatText:
		return extractPlainText(data)
	case FormatDocx:
		return extractDOCX(data)
	case FormatPDF:
		return extractPDF(data)
	case FormatDoc:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, docGuidance)
	default:
		return "", fmt.Errorf("%w: %q (supported: .txt, .docx, .pdf)", ErrUnsupportedFormat, string(format))
	}
}

func extractPlainText(data []byte) (string, error) {
	var text string
	if utf8.Valid(data) {
		text = string(data)
	} else {
		text = decodeLatin1(data)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("text file: %w", ErrExtractionFailed)
	}
	return text, nil
}

// decodeLatin1 maps each byte to the identically numbered code point.
func decodeLatin1(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf: %w: %v", ErrExtractionFailed, err)
	}

	var pages []string
	total := pdfReader.NumPage()
	for num := 1; num <= total; num++ {
		page := pdfReader.Page(num)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("pdf: %w", ErrExtractionFailed)
	}
	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

func extractDOCX(data []byte) (string, error) {
	raw, err := readDocxDocumentXML(data)
	if err != nil {
		return "", fmt.Errorf("docx: %w: %v", ErrExtractionFailed, err)
	}

	// Fast path: pull every text run in document order.
	text := strings.TrimSpace(stripDocxXML(raw))
	if text == "" {
		// Some generators emit text only inside nested paragraph structures.
		text = strings.TrimSpace(docxParagraphs(raw))
	}
	if text == "" {
		return "", fmt.Errorf("docx: %w", ErrExtractionFailed)
	}
	return text, nil
}

func readDocxDocumentXML(data []byte) (string, error) {
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ""
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return buf.String()
}

// docxParagraphs walks the document paragraph by paragraph and joins the
// non-empty ones with newlines.
func docxParagraphs(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var paragraphs []string
	var current strings.Builder
	depth := 0
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ""
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" {
				depth++
			}
		case xml.CharData:
			if depth > 0 {
				current.WriteString(string(t))
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				depth--
				if depth == 0 {
					if para := strings.TrimSpace(current.String()); para != "" {
						paragraphs = append(paragraphs, para)
					}
					current.Reset()
				}
			}
		}
	}
	return strings.Join(paragraphs, "\n")
}
