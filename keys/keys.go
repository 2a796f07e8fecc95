/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package keys

import (
	"regexp"
	"strings"
	"sync"

	"github.com/suparena/shopstore/errors"
)

// Attribute names of the table's composite primary key.
const (
	PartKeyAttr = "partkey"
	SortKeyAttr = "sortkey"

	// RecordTypeAttr tags entity kinds that share a partition.
	RecordTypeAttr = "record_type"
)

// Kind identifies an entity kind and selects its key template.
type Kind string

// Key is a resolved (partition, sort) pair.
type Key struct {
	Partition string
	Sort      string
}

// Template is a pure (partition, sort) template pair with {placeholder}
// macros bound to identifying attributes, plus the record_type tag for
// kinds that share a partition with siblings. Templates are immutable
// once registered; keys derived from them are never regenerated on update.
type Template struct {
	Partition  string
	Sort       string
	RecordType string
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

var (
	mu        sync.RWMutex
	templates = make(map[Kind]Template)
)

// Register associates a kind with its key template.
// It panics on duplicate registration to prevent accidental overrides.
func Register(kind Kind, tpl Template) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := templates[kind]; exists {
		panic("keys: template for kind " + string(kind) + " already registered")
	}
	templates[kind] = tpl
}

// TemplateFor retrieves the registered template for a kind, if any.
func TemplateFor(kind Kind) (Template, bool) {
	mu.RLock()
	defer mu.RUnlock()
	tpl, ok := templates[kind]
	return tpl, ok
}

// RecordType returns the record_type tag for a kind, empty when the kind
// does not define one (e.g. blacklisted tokens).
func RecordType(kind Kind) string {
	tpl, _ := TemplateFor(kind)
	return tpl.RecordType
}

// Make resolves the full (partition, sort) key for a kind. Every placeholder
// in both templates must have a bound value in attrs; otherwise it fails
// with a MissingIdentifierError.
func Make(kind Kind, attrs map[string]string) (Key, error) {
	tpl, ok := TemplateFor(kind)
	if !ok {
		return Key{}, errors.NewMissingIdentifierError(string(kind), "template")
	}

	partition, err := expand(kind, tpl.Partition, attrs)
	if err != nil {
		return Key{}, err
	}
	sort, err := expand(kind, tpl.Sort, attrs)
	if err != nil {
		return Key{}, err
	}
	return Key{Partition: partition, Sort: sort}, nil
}

// Prefix resolves the partition key and a sort-key prefix for range queries
// listing the children of a parent. The partition template must be fully
// bound; the sort template is expanded up to the first unbound placeholder,
// keeping the full literal discriminator that precedes it. The discriminator
// text keeps e.g. a variant prefix from matching extra-kit siblings stored
// in the same partition.
func Prefix(kind Kind, attrs map[string]string) (Key, error) {
	tpl, ok := TemplateFor(kind)
	if !ok {
		return Key{}, errors.NewMissingIdentifierError(string(kind), "template")
	}

	partition, err := expand(kind, tpl.Partition, attrs)
	if err != nil {
		return Key{}, err
	}

	var b strings.Builder
	last := 0
	for _, loc := range macroPattern.FindAllStringSubmatchIndex(tpl.Sort, -1) {
		b.WriteString(tpl.Sort[last:loc[0]])
		name := tpl.Sort[loc[2]:loc[3]]
		val, ok := attrs[name]
		if !ok || val == "" {
			// Stop at the first unbound placeholder; everything before it,
			// including the literal discriminator, forms the prefix.
			return Key{Partition: partition, Sort: b.String()}, nil
		}
		b.WriteString(val)
		last = loc[1]
	}
	b.WriteString(tpl.Sort[last:])
	return Key{Partition: partition, Sort: b.String()}, nil
}

// Expand fills a free-form {placeholder} template outside the table key
// scheme, e.g. object storage file paths. name labels the template in the
// MissingIdentifierError raised for an unbound placeholder.
func Expand(name, template string, attrs map[string]string) (string, error) {
	return expand(Kind(name), template, attrs)
}

func expand(kind Kind, template string, attrs map[string]string) (string, error) {
	var b strings.Builder
	last := 0
	for _, loc := range macroPattern.FindAllStringSubmatchIndex(template, -1) {
		b.WriteString(template[last:loc[0]])
		name := template[loc[2]:loc[3]]
		val, ok := attrs[name]
		if !ok || val == "" {
			return "", errors.NewMissingIdentifierError(string(kind), name)
		}
		b.WriteString(val)
		last = loc[1]
	}
	b.WriteString(template[last:])
	return b.String(), nil
}
