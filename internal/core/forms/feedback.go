package forms

import "strings"

// Feedback is the single top-level message a form shows after the backend
// rejected a submission.
type Feedback struct {
	Error        string `json:"error"`
	SuggestLogin bool   `json:"suggestLogin,omitempty"`
}

var alreadyExistsPhrases = []string{"already exists", "ya existe", "ya está registrado", "ya esta registrado"}

func Hint(err error) Feedback {
	if err == nil {
		return Feedback{}
	}

	msg := err.Error()
	lower := strings.ToLower(msg)

	for _, phrase := range alreadyExistsPhrases {
		if strings.Contains(lower, phrase) {
			return Feedback{Error: msg, SuggestLogin: true}
		}
	}

	return Feedback{Error: msg}
}
