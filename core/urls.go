package core

import (
	"regexp"
	"sort"
	"strings"
)

// URL-shaped names contain url/uri as a delimited token. Underscores are
// word characters, so the delimiter class is spelled out alongside the
// word-boundary form; the cased alternates cover camelCase names such as
// iconUrl that have no boundary at the case transition.
var urlShapedNamePattern = regexp.MustCompile(
	`(?i:(^|[\s_-])(url|uri)([\s_-]|$))|\b(?i:url|uri)\b|Url|Uri|URL|URI`,
)

var iconURLNamePattern = regexp.MustCompile(`(?i)icon[\s_-]*(url|uri)`)

// IsURLShapedName reports whether a property name looks like it holds a URL.
func IsURLShapedName(name string) bool {
	return urlShapedNamePattern.MatchString(name)
}

// EntryURLs filters the ordered property list down to URL-shaped names and
// orders the surviving values per preference. Unrecognized preferences fall
// through to URLPreferenceAny. The input is never mutated.
func EntryURLs(properties PropertyList, preference URLPreference) []string {
	filtered := make(PropertyList, 0, len(properties))
	for _, property := range properties {
		if IsURLShapedName(property.Name) {
			filtered = append(filtered, property)
		}
	}

	switch preference {
	case URLPreferenceGeneral:
		return rankedValues(filtered, isGeneralURLName)
	case URLPreferenceLogin:
		return rankedValues(filtered, isLoginURLName)
	case URLPreferenceIcon:
		for _, property := range filtered {
			if iconURLNamePattern.MatchString(property.Name) {
				return []string{property.Value}
			}
		}
		return []string{}
	default:
		return propertyValues(filtered)
	}
}

// FacadeURLs derives URLs from an assembled facade. Only property-kind
// fields participate; later duplicates overwrite earlier values while
// keeping the first-seen position.
func FacadeURLs(fields []EntryFacadeField, preference URLPreference) []string {
	properties := make(PropertyList, 0, len(fields))
	for _, field := range fields {
		if field.Field != PropertyKindProperty {
			continue
		}
		properties = properties.Set(field.Property, field.Value)
	}
	return EntryURLs(properties, preference)
}

// URLs resolves the facade's property-kind fields per preference.
func (f Facade) URLs(preference URLPreference) []string {
	return FacadeURLs(f.Fields, preference)
}

// rankedValues moves preferred names ahead of the rest. The sort is stable
// so same-rank names keep their input order.
func rankedValues(filtered PropertyList, preferred func(string) bool) []string {
	ranked := make(PropertyList, len(filtered))
	copy(ranked, filtered)
	sort.SliceStable(ranked, func(i, j int) bool {
		return preferred(ranked[i].Name) && !preferred(ranked[j].Name)
	})
	return propertyValues(ranked)
}

func propertyValues(properties PropertyList) []string {
	values := make([]string, 0, len(properties))
	for _, property := range properties {
		values = append(values, property.Value)
	}
	return values
}

func isGeneralURLName(name string) bool {
	lowered := strings.ToLower(name)
	return lowered == "url" || lowered == "uri"
}

func isLoginURLName(name string) bool {
	return strings.Contains(strings.ToLower(name), "login")
}
