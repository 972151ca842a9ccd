package services

import (
	"encoding/json"
	"fmt"

	"campusconnect-api/models"
)

// DecodeDocument parses raw data into the document type of kind.
func DecodeDocument(kind models.ResourceKind, raw []byte) (any, error) {
	var (
		doc any
		err error
	)
	switch kind {
	case models.ResourceEvents:
		var d models.EventsDocument
		err = json.Unmarshal(raw, &d)
		doc = d
	case models.ResourceGallery:
		var d models.GalleryDocument
		err = json.Unmarshal(raw, &d)
		doc = d
	case models.ResourceContacts:
		var d models.ContactsDocument
		err = json.Unmarshal(raw, &d)
		doc = d
	case models.ResourceAbout:
		var d models.AboutDocument
		err = json.Unmarshal(raw, &d)
		doc = d
	default:
		return nil, fmt.Errorf("%q: %w", kind, models.ErrUnknownResource)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s document: %w", kind, err)
	}
	return doc, nil
}

// ValidateDocument decodes raw data and checks that ids are unique
// within the collection. Used before publishing a replacement document.
func ValidateDocument(kind models.ResourceKind, raw []byte) error {
	doc, err := DecodeDocument(kind, raw)
	if err != nil {
		return err
	}

	seen := make(map[int]struct{})
	check := func(id int) error {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("invalid %s document: duplicate id %d", kind, id)
		}
		seen[id] = struct{}{}
		return nil
	}

	switch d := doc.(type) {
	case models.EventsDocument:
		for _, e := range d.Events {
			if err := check(e.ID); err != nil {
				return err
			}
		}
	case models.GalleryDocument:
		for _, item := range d.Gallery {
			if err := check(item.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
