package models

// TranslationRequest представляет тело запроса на перевод субтитров
type TranslationRequest struct {
	InputContent string `json:"inputContent"`
	APIKey       string `json:"apiKey"`
	CustomPrompt string `json:"customPrompt,omitempty"`
}

// TranslationResponse представляет успешный ответ с переведённым текстом
type TranslationResponse struct {
	TranslatedContent string `json:"translatedContent"`
}

// ErrorResponse представляет тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
