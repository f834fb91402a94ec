package core

// PropertyKind names the typed bucket on a record a field maps to.
type PropertyKind string

const (
	PropertyKindProperty  PropertyKind = "property"
	PropertyKindMeta      PropertyKind = "meta"
	PropertyKindAttribute PropertyKind = "attribute"
)

func (k PropertyKind) IsValid() bool {
	switch k {
	case PropertyKindProperty, PropertyKindMeta, PropertyKindAttribute:
		return true
	default:
		return false
	}
}

// URLPreference selects which URL-shaped property values to surface.
type URLPreference string

const (
	URLPreferenceAny     URLPreference = "any"
	URLPreferenceGeneral URLPreference = "general"
	URLPreferenceLogin   URLPreference = "login"
	URLPreferenceIcon    URLPreference = "icon"
)

func (p URLPreference) IsValid() bool {
	switch p {
	case URLPreferenceAny, URLPreferenceGeneral, URLPreferenceLogin, URLPreferenceIcon:
		return true
	default:
		return false
	}
}

// EntryFacadeField is a display/edit-ready snapshot of one record field.
// Value is read at construction time and never tracks later record
// mutation. Formatting is an opaque vendor descriptor passed through
// untouched; nil means none.
type EntryFacadeField struct {
	ID         string
	Title      string
	Field      PropertyKind
	Property   string
	Value      string
	Secret     bool
	Multiline  bool
	Formatting any
	Removeable bool
}

// Property is one named value in iteration order. URL resolution depends on
// input order, so properties travel as an explicit list rather than a map.
type Property struct {
	Name  string
	Value string
}

// PropertyList is an ordered name/value sequence. Duplicate names are
// allowed; Set applies later-wins overwrite keeping the first-seen position.
type PropertyList []Property

func (l PropertyList) Get(name string) (string, bool) {
	for _, property := range l {
		if property.Name == name {
			return property.Value, true
		}
	}
	return "", false
}

func (l PropertyList) Set(name, value string) PropertyList {
	for i := range l {
		if l[i].Name == name {
			l[i].Value = value
			return l
		}
	}
	return append(l, Property{Name: name, Value: value})
}

// Facade is an ordered collection of field descriptors assembled by the
// caller. This core only reads it.
type Facade struct {
	Fields []EntryFacadeField
}
