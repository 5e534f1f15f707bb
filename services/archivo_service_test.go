package services

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func buildFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="imagen_acta"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("Failed to create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed to write part: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("Failed to parse multipart form: %v", err)
	}
	return req.MultipartForm.File["imagen_acta"][0]
}

func TestGuardarImagenActa(t *testing.T) {
	dir := t.TempDir()
	svc := NewArchivoService(dir)

	file := buildFileHeader(t, "acta.png", "image/png", []byte("fake-png-bytes"))
	url, err := svc.GuardarImagenActa(file)
	if err != nil {
		t.Fatalf("GuardarImagenActa failed: %v", err)
	}

	if !strings.HasPrefix(url, "/uploads/actas/acta-") || !strings.HasSuffix(url, ".png") {
		t.Errorf("unexpected reference path: %q", url)
	}

	saved := filepath.Join(dir, "actas", filepath.Base(url))
	data, err := os.ReadFile(saved)
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "fake-png-bytes" {
		t.Error("stored content does not match upload")
	}
}

func TestGuardarImagenActaNombresUnicos(t *testing.T) {
	dir := t.TempDir()
	svc := NewArchivoService(dir)

	file := buildFileHeader(t, "acta.jpg", "image/jpeg", []byte("a"))
	url1, err := svc.GuardarImagenActa(file)
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	url2, err := svc.GuardarImagenActa(file)
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if url1 == url2 {
		t.Error("same reference path for two uploads, names must be unique")
	}
}

func TestGuardarImagenActaTipoRechazado(t *testing.T) {
	svc := NewArchivoService(t.TempDir())

	tests := []struct {
		name        string
		filename    string
		contentType string
	}{
		{"extension no permitida", "acta.txt", "text/plain"},
		{"content-type falsificado", "acta.png", "application/octet-stream"},
		{"extension falsificada", "acta.exe", "image/png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := buildFileHeader(t, tt.filename, tt.contentType, []byte("x"))
			_, err := svc.GuardarImagenActa(file)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("error = %v, want ValidationError", err)
			}
		})
	}
}

func TestGuardarImagenActaDemasiadoGrande(t *testing.T) {
	svc := NewArchivoService(t.TempDir())

	file := buildFileHeader(t, "acta.pdf", "application/pdf", bytes.Repeat([]byte("a"), MaxArchivoSize+1))
	_, err := svc.GuardarImagenActa(file)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("error = %v, want ValidationError for oversize file", err)
	}
}
