package core

// RecordReader is the narrow read contract of the external credential
// record. Each namespace maps a string name to a string value; absent-name
// behavior is the record's own concern.
type RecordReader interface {
	GetProperty(name string) string
	GetMeta(name string) string
	GetAttribute(name string) string
}

// PropertyValue dispatches a (kind, name) pair to the record's typed
// getter. A kind outside the PropertyKind enumeration yields a bad-input
// error carrying the offending kind; no other validation happens here.
func PropertyValue(record RecordReader, kind PropertyKind, name string) (string, error) {
	if record == nil {
		return "", dependencyError("core: record reader is required")
	}
	switch kind {
	case PropertyKindProperty:
		return record.GetProperty(name), nil
	case PropertyKindMeta:
		return record.GetMeta(name), nil
	case PropertyKindAttribute:
		return record.GetAttribute(name), nil
	default:
		return "", unknownPropertyKindError(kind)
	}
}
