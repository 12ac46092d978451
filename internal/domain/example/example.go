package example

import "fmt"

// Example is a reusable code snippet (immutable value object).
type Example struct {
	name        string
	description string
	code        string
}

// New validates and creates an Example.
func New(name, description, code string) (Example, error) {
	if name == "" {
		return Example{}, fmt.Errorf("example name is required")
	}
	if code == "" {
		return Example{}, fmt.Errorf("example %q: code is required", name)
	}
	return Example{name: name, description: description, code: code}, nil
}

// Name returns the catalog key.
func (e *Example) Name() string { return e.name }

// Description returns the one-line summary.
func (e *Example) Description() string { return e.description }

// Code returns the snippet source.
func (e *Example) Code() string { return e.code }
