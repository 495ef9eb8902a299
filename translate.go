package lmtranslate

import (
	"context"
	"strings"
)

// Instruction is prepended to every source text. It is policy, not a
// parameter.
const Instruction = "Translate the following English text to natural Japanese. " +
	"Keep technical terms (service names, product names, command names) in English. " +
	"Output only the translated text without any explanation."

// Temperature favors literal, repeatable translations
const Temperature = 0.3

// Prompt builds the user message sent for a translation
func Prompt(text string) string {
	return Instruction + "\n\n" + text
}

// ListModels returns the model ids in the order the server lists them
func ListModels(ctx context.Context, provider Provider, baseURL string) ([]string, error) {
	models, err := provider.Models(ctx)
	if err != nil {
		return nil, &Failure{OpListModels, baseURL, err}
	}
	ids := make([]string, len(models))
	for i, m := range models {
		ids[i] = m.ID
	}
	return ids, nil
}

// Translate translates English text into Japanese with a single chat request.
// Empty or all-whitespace text fails with ErrEmptyInput before any request is
// made.
func Translate(ctx context.Context, provider Provider, baseURL, model, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}
	res, err := provider.Chat(ctx, &ChatRequest{
		Model:       model,
		Messages:    []*Message{UserMessage(Prompt(text))},
		Temperature: Temperature,
	})
	if err != nil {
		return "", &Failure{OpTranslate, baseURL, err}
	}
	return res.Content, nil
}
