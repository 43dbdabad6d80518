package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Manual test client: uploads one clip to a running server and prints the answer
func main() {
	server := flag.String("server", "http://localhost:8080", "server base URL")
	language := flag.String("lang", "", "language_code form field (server default en-US)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: upload-client [-server URL] [-lang CODE] <clip.ogg>")
		os.Exit(2)
	}

	status, body, err := upload(*server, flag.Arg(0), *language)
	if err != nil {
		log.Fatal("upload failed:", err)
	}

	fmt.Printf("HTTP %d\n%s\n", status, body)
	if status != http.StatusOK {
		os.Exit(1)
	}
}

func upload(server, path, language string) (int, []byte, error) {
	audio, err := os.ReadFile(path)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read audio file: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return 0, nil, err
	}
	if _, err := part.Write(audio); err != nil {
		return 0, nil, err
	}
	if language != "" {
		if err := w.WriteField("language_code", language); err != nil {
			return 0, nil, err
		}
	}
	if err := w.Close(); err != nil {
		return 0, nil, err
	}

	log.Printf("uploading %s (%d bytes) to %s", path, len(audio), server)

	client := &http.Client{Timeout: 90 * time.Second}
	resp, err := client.Post(server+"/upload/", w.FormDataContentType(), &buf)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, body, nil
}
