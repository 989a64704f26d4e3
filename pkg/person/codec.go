package person

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// document is the wire form of a Person.
type document struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Age       int    `json:"age" yaml:"age"`
	IsDraft   bool   `json:"is_draft" yaml:"is_draft"`
}

// document reads every field through its getter, so an invalid non-draft
// person fails here.
func (p *Person) document() (document, error) {
	if p.v == nil {
		return document{}, nil
	}
	first, err := p.FirstName()
	if err != nil {
		return document{}, err
	}
	last, err := p.LastName()
	if err != nil {
		return document{}, err
	}
	age, err := p.Age()
	if err != nil {
		return document{}, err
	}
	return document{FirstName: first, LastName: last, Age: age, IsDraft: p.draft}, nil
}

// apply loads doc into p. The draft flag is set before any field so that the
// object is a draft from its first read on. Invalid values are accepted.
func (p *Person) apply(doc document) error {
	if p.v == nil {
		p.init()
	}
	p.draft = doc.IsDraft
	if err := p.SetAge(doc.Age); err != nil {
		return err
	}
	if err := p.SetFirstName(doc.FirstName); err != nil {
		return err
	}
	return p.SetLastName(doc.LastName)
}

func (p *Person) MarshalJSON() ([]byte, error) {
	doc, err := p.document()
	if err != nil {
		return nil, fmt.Errorf("person: %w", err)
	}
	return json.Marshal(doc)
}

func (p *Person) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return p.apply(doc)
}

func (p *Person) MarshalYAML() (any, error) {
	doc, err := p.document()
	if err != nil {
		return nil, fmt.Errorf("person: %w", err)
	}
	return doc, nil
}

func (p *Person) UnmarshalYAML(node *yaml.Node) error {
	var doc document
	if err := node.Decode(&doc); err != nil {
		return err
	}
	return p.apply(doc)
}
