package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownResource     = errors.New("unknown resource")
	ErrUnknownBookmarkKind = errors.New("unknown bookmark kind")
	ErrNotFound            = errors.New("not found")
)

// ResourceKind names one of the JSON documents the site is built from.
type ResourceKind string

const (
	ResourceEvents   ResourceKind = "events"
	ResourceGallery  ResourceKind = "gallery"
	ResourceContacts ResourceKind = "contacts"
	ResourceAbout    ResourceKind = "about"
)

// Resources lists every kind in start-up load order.
var Resources = []ResourceKind{ResourceEvents, ResourceGallery, ResourceContacts, ResourceAbout}

var fallbacks = map[ResourceKind]string{
	ResourceEvents:   `{"events":[]}`,
	ResourceGallery:  `{"gallery":[]}`,
	ResourceContacts: `{"staff":[],"students":[]}`,
	ResourceAbout:    `{"college":{},"vision":"","mission":"","stats":[]}`,
}

func ParseResourceKind(s string) (ResourceKind, error) {
	kind := ResourceKind(s)
	if _, ok := fallbacks[kind]; !ok {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownResource)
	}
	return kind, nil
}

// Path is the document location relative to the data source root.
func (k ResourceKind) Path() string {
	return fmt.Sprintf("data/%s.json", k)
}

// Fallback is the empty document served when loading fails.
func (k ResourceKind) Fallback() json.RawMessage {
	if v, ok := fallbacks[k]; ok {
		return json.RawMessage(v)
	}
	return json.RawMessage(`{}`)
}

// CacheEntry is a fetched document together with its fetch time.
type CacheEntry struct {
	Data      json.RawMessage
	FetchedAt time.Time
}

// Notice reports a failed load. Content from the fallback is served
// meanwhile and the next request retries the source.
type Notice struct {
	Resource ResourceKind `json:"resource"`
	Message  string       `json:"message"`
	At       time.Time    `json:"at"`
	Retry    bool         `json:"retry"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
