package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Author identifies who posted a tweet.
type Author struct {
	Handle string `json:"handle"`
	Name   string `json:"name"`
	Title  string `json:"title,omitempty"`
}

// Tweet is one entry of the tweet collection.
type Tweet struct {
	ID      TweetID `json:"id"`
	Author  *Author `json:"author,omitempty"`
	Content string  `json:"content"`
}

// TweetID holds the id literal exactly as it appeared in the document.
// The curated file uses integers and the fetch utility writes strings; both
// round-trip unchanged.
type TweetID string

// MarshalJSON writes the original literal back out.
func (id TweetID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return []byte(id), nil
}

// UnmarshalJSON accepts a JSON number or string.
func (id *TweetID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("tweet id must be a number or string: %w", err)
		}
	}
	*id = TweetID(data)
	return nil
}

// String returns the id without quotes.
func (id TweetID) String() string {
	var s string
	if len(id) > 0 && id[0] == '"' && json.Unmarshal([]byte(id), &s) == nil {
		return s
	}
	return string(id)
}
