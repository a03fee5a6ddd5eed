package errleak

import (
	"errors"
	"fmt"
	"net/http"
)

type upstreamError struct{ msg string }

func (e *upstreamError) Error() string { return e.msg }

func leak(w http.ResponseWriter) {
	err := errors.New("upstream: 500")
	http.Error(w, err.Error(), http.StatusInternalServerError) // want "error details leak to HTTP client"

	var ue *upstreamError
	http.Error(w, "failed: "+ue.Error(), http.StatusInternalServerError) // want "error details leak to HTTP client"

	http.Error(w, fmt.Sprintf("failed: %s", err.Error()), http.StatusBadGateway) // want "error details leak to HTTP client"
}

type notAnError struct{}

func (notAnError) Error(code int) string { return "" }

func fixed(w http.ResponseWriter) {
	http.Error(w, "Internal server error", http.StatusInternalServerError)

	var n notAnError
	http.Error(w, n.Error(1), http.StatusInternalServerError)

	pe := &http.ProtocolError{ErrorString: "x"}
	_ = pe.Error()
}
