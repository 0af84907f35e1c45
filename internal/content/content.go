// Package content holds the marketing copy rendered on the page.
//
// The default copy is embedded in data.json. An override file with the same
// shape can be loaded at startup to change the text without a rebuild.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

//go:embed data.json
var defaultData []byte

// Item is one card of a list section. Only the fields used by the section are set.
type Item struct {
	Title  string `json:"title"`
	Desc   string `json:"desc"`
	Step   string `json:"step,omitempty"`
	Icon   string `json:"icon,omitempty"`
	Phase  string `json:"phase,omitempty"`
	Status string `json:"status,omitempty"`
}

// Block is a headline with a paragraph.
type Block struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Desc     string `json:"desc,omitempty"`
}

// ContactDetails are the static contact cards.
type ContactDetails struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// PhoneHref returns the tel: link for the phone number with spaces removed.
func (c ContactDetails) PhoneHref() string {
	return "tel:" + strings.ReplaceAll(c.Phone, " ", "")
}

// EmailHref returns the mailto: link for the e-mail address.
func (c ContactDetails) EmailHref() string {
	return "mailto:" + c.Email
}

// Content is the full page copy.
type Content struct {
	Hero       Block          `json:"hero"`
	Problems   []Item         `json:"problems"`
	HowItWorks []Item         `json:"howItWorks"`
	NoAIHype   Block          `json:"noAiHype"`
	Utility    []Item         `json:"utility"`
	Roadmap    []Item         `json:"roadmap"`
	Trust      []Item         `json:"trust"`
	Contact    ContactDetails `json:"contact"`
	Copyright  string         `json:"copyright"`
	Disclaimer string         `json:"disclaimer"`

	raw []byte
}

// Sections lists the names of the list sections in page order.
var Sections = []string{"problems", "howItWorks", "utility", "roadmap", "trust"}

// Default returns the embedded copy.
func Default() *Content {
	c, err := Parse(defaultData)
	if err != nil {
		panic(fmt.Sprintf("embedded content is invalid: %v", err))
	}
	return c
}

// Load reads content from path. An empty path returns the embedded copy.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes content and checks that every list section is present and non-empty.
func Parse(data []byte) (*Content, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	for _, name := range Sections {
		section := gjson.GetBytes(data, name)
		if !section.IsArray() || len(section.Array()) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingSection, name)
		}
	}

	var c Content
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	c.raw = data
	return &c, nil
}

// Raw returns the JSON document the content was parsed from.
func (c *Content) Raw() []byte {
	return c.raw
}

// Section returns the raw JSON array of the named list section.
func (c *Content) Section(name string) ([]byte, error) {
	known := false
	for _, s := range Sections {
		if s == name {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}

	return []byte(gjson.GetBytes(c.raw, name).Raw), nil
}
