package domain

import "strings"

// Speaker is a structured presenter record attached to a session.
// swagger:model Speaker
type Speaker struct {
	ID                ID     `json:"id" yaml:"id"`
	FirstName         string `json:"first_name" yaml:"first_name"`
	LastName          string `json:"last_name" yaml:"last_name"`
	JobTitle          string `json:"job_title,omitempty" yaml:"job_title"`
	Organization      string `json:"organization,omitempty" yaml:"organization"`
	Bio               string `json:"bio,omitempty" yaml:"bio"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty" yaml:"profile_picture_url"`
}

// FullName joins first and last name, skipping whichever is blank.
func (s Speaker) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(s.FirstName) + " " + strings.TrimSpace(s.LastName))
}
