// Package audio generates and caches text-to-speech pronunciations for
// practice words. Generated MP3s are kept on disk keyed by the sanitized
// word, so each word is synthesized at most once.
package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const ttsRequestTimeout = 10 * time.Second

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9_]+`)

// TTSService synthesizes word audio via the Google Translate TTS endpoint
// (free, no API key) and caches the files under audioDir.
type TTSService struct {
	audioDir string
	http     *http.Client
}

// NewTTSService creates a TTS service writing into audioDir. The directory
// is created if missing.
func NewTTSService(audioDir string) (*TTSService, error) {
	if err := os.MkdirAll(audioDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}
	return &TTSService{
		audioDir: audioDir,
		http:     &http.Client{Timeout: ttsRequestTimeout},
	}, nil
}

// AudioPath returns the path of the MP3 for word, synthesizing it first if
// it is not already cached.
func (s *TTSService) AudioPath(ctx context.Context, word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", fmt.Errorf("word is empty")
	}

	path := filepath.Join(s.audioDir, s.filenameFor(word))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := s.fetchAudio(ctx, word, path); err != nil {
		return "", fmt.Errorf("failed to generate audio for %q: %w", word, err)
	}
	return path, nil
}

// WarmUp synthesizes audio for a batch of words, logging nothing and
// stopping at the first failure so a broken upstream does not stall
// startup. Best effort; callers treat errors as non-fatal.
func (s *TTSService) WarmUp(ctx context.Context, words []string) error {
	for _, word := range words {
		if _, err := s.AudioPath(ctx, word); err != nil {
			return err
		}
	}
	return nil
}

func (s *TTSService) filenameFor(word string) string {
	sanitized := strings.ToLower(strings.TrimSpace(word))
	sanitized = strings.ReplaceAll(sanitized, " ", "_")
	sanitized = unsafeFilenameChars.ReplaceAllString(sanitized, "")
	return fmt.Sprintf("word_%s.mp3", sanitized)
}

// fetchAudio downloads synthesized speech into outputPath
func (s *TTSService) fetchAudio(ctx context.Context, text, outputPath string) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", "en")
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	fullURL := "https://translate.google.com/translate_tts?" + params.Encode()

	ctx, cancel := context.WithTimeout(ctx, ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	// The endpoint rejects requests without a browser user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	return nil
}
