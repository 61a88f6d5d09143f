package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/tube-digest/internal/chapters"
)

func (s *implSummarizer) Summarize(ctx context.Context, transcript string, style Style) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", fmt.Errorf("empty transcript")
	}

	s.logger.Debug(ctx, "Generating %s summary (%d chars of transcript)", style, len(transcript))

	text, err := s.generate(ctx, style.prompt(transcript))
	if err != nil {
		return "", fmt.Errorf("generate %s summary: %w", style, err)
	}
	return strings.TrimSpace(text), nil
}

func (s *implSummarizer) SummarizeChapter(ctx context.Context, title, transcript string) (string, error) {
	text, err := s.generate(ctx, fmt.Sprintf(chapterSectionPrompt, title, transcript))
	if err != nil {
		return "", fmt.Errorf("generate chapter summary %q: %w", title, err)
	}
	return strings.TrimSpace(text), nil
}

func (s *implSummarizer) ProposeChapters(ctx context.Context, transcript string) ([]chapters.Chapter, error) {
	text, err := s.generate(ctx, fmt.Sprintf(proposeChaptersPrompt, transcript))
	if err != nil {
		return nil, fmt.Errorf("propose chapters: %w", err)
	}

	chs, err := chapters.ParseModelJSON(text)
	if err != nil {
		return nil, fmt.Errorf("propose chapters: %w", err)
	}
	return chs, nil
}

// generate sends the prompt to Gemini and returns the concatenated response
// text. Rotates API keys on 429 / quota errors.
func (s *implSummarizer) generate(ctx context.Context, prompt string) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
