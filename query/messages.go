package query

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-entry-facade/core"
)

const (
	TypeBuildField           = "entry_facade.query.field.build"
	TypeResolveEntryURLs     = "entry_facade.query.urls.resolve"
	TypeResolveFacadeURLs    = "entry_facade.query.facade_urls.resolve"
	TypeValidatePropertyName = "entry_facade.query.property_name.validate"
)

type BuildFieldMessage struct {
	Record  core.RecordReader
	Title   string
	Kind    core.PropertyKind
	Name    string
	Options core.FieldOptions
}

func (BuildFieldMessage) Type() string { return TypeBuildField }

func (m BuildFieldMessage) Validate() error {
	if m.Record == nil {
		return fmt.Errorf("query: record reader is required")
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("query: property name is required")
	}
	return nil
}

type ResolveEntryURLsMessage struct {
	Properties core.PropertyList
	Preference core.URLPreference
}

func (ResolveEntryURLsMessage) Type() string { return TypeResolveEntryURLs }

func (ResolveEntryURLsMessage) Validate() error { return nil }

type ResolveFacadeURLsMessage struct {
	Fields     []core.EntryFacadeField
	Preference core.URLPreference
}

func (ResolveFacadeURLsMessage) Type() string { return TypeResolveFacadeURLs }

func (ResolveFacadeURLsMessage) Validate() error { return nil }

type ValidatePropertyNameMessage struct {
	Name string
}

func (ValidatePropertyNameMessage) Type() string { return TypeValidatePropertyName }

func (m ValidatePropertyNameMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("query: property name is required")
	}
	return nil
}
