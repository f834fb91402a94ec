package core

import "github.com/google/uuid"

// FieldOptions carries the optional display/edit flags for a field
// descriptor. The zero value is the defaulted form: not secret, single
// line, no formatting, not removeable.
type FieldOptions struct {
	Multiline  bool
	Secret     bool
	Formatting any
	Removeable bool
}

// NewFieldDescriptor builds a presentable field descriptor for one record
// property. The value is resolved through PropertyValue at call time; each
// call re-reads the record and mints a fresh descriptor ID.
func NewFieldDescriptor(
	record RecordReader,
	title string,
	kind PropertyKind,
	name string,
	options FieldOptions,
) (EntryFacadeField, error) {
	value, err := PropertyValue(record, kind, name)
	if err != nil {
		return EntryFacadeField{}, err
	}
	return EntryFacadeField{
		ID:         uuid.NewString(),
		Title:      title,
		Field:      kind,
		Property:   name,
		Value:      value,
		Secret:     options.Secret,
		Multiline:  options.Multiline,
		Formatting: options.Formatting,
		Removeable: options.Removeable,
	}, nil
}
