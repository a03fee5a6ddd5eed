// Package prompt собирает текст запроса к модели для перевода субтитров.
// Шаблон инструкций неизменяем и задан константами; сборка является чистой функцией.
package prompt

import "strings"

// BaseInstructions описывает правила перевода субтитров: сохранение структуры,
// регистра, романизацию имён собственных и запрет на комментарии.
const BaseInstructions = "Translate the subtitles in this file into Vietnamese with the following requirements: \n" +
	"Maintain the original format, including sequence numbers, timestamps, and the number of lines.\n" +
	"Preserve the capitalization exactly as in the original text for languages that distinguish between uppercase and lowercase letters (e.g., English).\n" +
	"For languages that do not distinguish between uppercase and lowercase letters (e.g., Chinese):\n" +
	"Detect proper nouns (e.g., names of people, places, or organizations) and convert them to standard pinyin. Ensure the first letter of each word in pinyin is capitalized.\n" +
	"Use standard pinyin rules: No diacritics (e.g., \"Song Chengli\" instead of \"sòng chénglǐ\").\n" +
	"Retain other parts of the sentence in lowercase and capitalize only the first letter of the sentence.\n" +
	"Keep the original Chinese characters when applicable, without any modification." +
	"Do not merge content from different timestamps into a single translation block.\n" +
	"Retain all punctuation, special characters, and line breaks from the original content to preserve the original flow and structure of the subtitles.\n" +
	"Return only the translated content in the specified format, without any additional explanations, introductions, or questions.\n"

// DefaultToneGuidance добавляется после BaseInstructions, если пользователь не передал свой промпт.
const DefaultToneGuidance = "Ensure translations are accurate and match the context, culture, and situations in the movie. Use natural and conversational Vietnamese that reflects the tone and emotion of the original dialogue.\n" +
	"Avoid literal translations that sound unnatural in Vietnamese. Adjust word choices and sentence structures to make the translation feel fluent and emotionally aligned with the movie's tone.\n"

// Build возвращает полный текст запроса: базовые инструкции, затем customPrompt
// (или DefaultToneGuidance, если customPrompt пуст) и исходные субтитры без изменений.
func Build(inputContent, customPrompt string) string {
	guidance := DefaultToneGuidance
	if customPrompt != "" {
		guidance = customPrompt
	}

	var b strings.Builder
	b.Grow(len(BaseInstructions) + len(guidance) + len(inputContent))
	b.WriteString(BaseInstructions)
	b.WriteString(guidance)
	b.WriteString(inputContent)
	return b.String()
}
