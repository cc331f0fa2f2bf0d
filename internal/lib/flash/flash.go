// Package flash carries one-shot messages across redirects in a cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const cookieName = "flash"

const (
	KindSuccess = "success"
	KindError   = "error"
)

type Message struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Set stores the message for the next request.
func Set(w http.ResponseWriter, kind, text string) {
	data, err := json.Marshal(Message{Kind: kind, Text: text})
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.URLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
	})
}

// Pop reads the pending message, if any, and clears it.
func Pop(w http.ResponseWriter, r *http.Request) *Message {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	data, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil
	}

	return &msg
}
