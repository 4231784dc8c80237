package model

import (
	"fmt"
	"regexp"
)

// DocumentType is the kind of identity document a user declares.
type DocumentType string

const (
	DocumentTypeDNI      DocumentType = "DNI"
	DocumentTypeCE       DocumentType = "CE"
	DocumentTypePassport DocumentType = "PASSPORT"
	DocumentTypeTI       DocumentType = "TI"
)

type documentRule struct {
	description string
	pattern     *regexp.Regexp
}

var documentRules = map[DocumentType]documentRule{
	DocumentTypeDNI:      {description: "Documento Nacional de Identidad", pattern: regexp.MustCompile(`^[0-9]{8}$`)},
	DocumentTypeCE:       {description: "Carnet de Extranjería", pattern: regexp.MustCompile(`^[0-9]{1,20}$`)},
	DocumentTypePassport: {description: "Pasaporte", pattern: regexp.MustCompile(`^[A-Z0-9]{6,20}$`)},
	DocumentTypeTI:       {description: "Tarjeta de Identidad", pattern: regexp.MustCompile(`^[0-9]{1,20}$`)},
}

// ParseDocumentType converts a name such as "DNI" into a DocumentType.
func ParseDocumentType(s string) (DocumentType, error) {
	dt := DocumentType(s)
	if _, ok := documentRules[dt]; !ok {
		return "", fmt.Errorf("unknown document type %q", s)
	}
	return dt, nil
}

// Description returns the human readable name of the document type.
func (d DocumentType) Description() string {
	return documentRules[d].description
}

// IsValidNumber reports whether number matches the format of the document type.
// Empty numbers and unknown types are never valid.
func (d DocumentType) IsValidNumber(number string) bool {
	rule, ok := documentRules[d]
	if !ok || number == "" {
		return false
	}
	return rule.pattern.MatchString(number)
}
