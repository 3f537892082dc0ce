package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	repo "github.com/rogerio-castellano/storefront/internal/repo"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// respondRepoError maps repository errors onto the API's two failure kinds:
// 404 for missing entities, 400 for business-rule violations. Anything else
// is an internal error described by fallback.
func respondRepoError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, repo.ErrProductNotFound),
		errors.Is(err, repo.ErrCategoryNotFound),
		errors.Is(err, repo.ErrCartNotFound),
		errors.Is(err, repo.ErrItemNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, repo.ErrCartEmpty),
		errors.Is(err, repo.ErrProductAlreadyLinked),
		errors.Is(err, repo.ErrProductNotLinked):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var stockErr *repo.InsufficientStockError
	if errors.As(err, &stockErr) {
		http.Error(w, stockErr.Error(), http.StatusBadRequest)
		return
	}

	http.Error(w, fallback, http.StatusInternalServerError)
}
