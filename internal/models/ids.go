package models

import "github.com/google/uuid"

// SingletonID is the fixed primary key of single-row tables (contact info, branding).
const SingletonID = "1"

func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
