package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/caasmo/pkcegen/crypto"
)

type result struct {
	crypto.Pair
	State            string `json:"state,omitempty"`
	AuthorizationURL string `json:"authorization_url,omitempty"`
}

func writeText(w io.Writer, r result) error {
	if _, err := fmt.Fprintf(w, "Code Verifier:   %s\nCode Challenge:  %s\n", r.Verifier, r.Challenge); err != nil {
		return err
	}
	if r.AuthorizationURL == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "State:           %s\nAuthorization URL: %s\n", r.State, r.AuthorizationURL)
	return err
}

func writeJSON(w io.Writer, r result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
