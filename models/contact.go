package models

import "encoding/json"

type Contact struct {
	Name             string   `json:"name"`
	Designation      string   `json:"designation"`
	Department       string   `json:"department"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email"`
	Responsibilities []string `json:"responsibilities"`
	Year             string   `json:"year,omitempty"`
}

// ContactsDocument covers both published layouts of data/contacts.json:
// the flat staff/students lists and the nested "contacts" section.
type ContactsDocument struct {
	Staff    []Contact       `json:"staff"`
	Students []Contact       `json:"students"`
	Contacts *ContactsDetail `json:"contacts,omitempty"`
}

type ContactsDetail struct {
	College  json.RawMessage `json:"college,omitempty"`
	Faculty  []Contact       `json:"faculty"`
	Students []Contact       `json:"students"`
}

// Faculty returns faculty contacts from whichever layout is present.
func (d ContactsDocument) Faculty() []Contact {
	if d.Contacts != nil && len(d.Contacts.Faculty) > 0 {
		return d.Contacts.Faculty
	}
	return d.Staff
}

func (d ContactsDocument) StudentContacts() []Contact {
	if d.Contacts != nil && len(d.Contacts.Students) > 0 {
		return d.Contacts.Students
	}
	return d.Students
}
