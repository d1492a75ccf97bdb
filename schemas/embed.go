// Package schemas holds the JSON Schema documents for the corpus and profile files.
package schemas

import "embed"

// Files contains every *.schema.json document in this directory.
//
//go:embed *.schema.json
var Files embed.FS

// Schema file names.
const (
	Careers = "careers.schema.json"
	Mentors = "mentors.schema.json"
	Profile = "profile.schema.json"
)

// Read returns the content of a named schema.
func Read(name string) (string, error) {
	data, err := Files.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
