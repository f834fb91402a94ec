package query

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/goliatone/go-entry-facade/core"
	goerrors "github.com/goliatone/go-errors"
)

type stubFacadeService struct {
	field      core.EntryFacadeField
	urls       []string
	recognized map[string]bool

	lastPreference core.URLPreference
}

func (s *stubFacadeService) BuildField(
	_ context.Context,
	record core.RecordReader,
	title string,
	kind core.PropertyKind,
	name string,
	options core.FieldOptions,
) (core.EntryFacadeField, error) {
	return core.NewFieldDescriptor(record, title, kind, name, options)
}

func (s *stubFacadeService) EntryURLs(
	_ context.Context,
	properties core.PropertyList,
	preference core.URLPreference,
) []string {
	s.lastPreference = preference
	return core.EntryURLs(properties, preference)
}

func (s *stubFacadeService) FacadeURLs(
	_ context.Context,
	fields []core.EntryFacadeField,
	preference core.URLPreference,
) []string {
	s.lastPreference = preference
	return core.FacadeURLs(fields, preference)
}

func (s *stubFacadeService) IsRecognizedProperty(name string) bool {
	return s.recognized[name]
}

type queryRecord struct {
	properties map[string]string
}

func (r queryRecord) GetProperty(name string) string { return r.properties[name] }
func (r queryRecord) GetMeta(string) string          { return "" }
func (r queryRecord) GetAttribute(string) string     { return "" }

func TestBuildFieldQuery(t *testing.T) {
	service := &stubFacadeService{}
	handler := NewBuildFieldQuery(service)

	field, err := handler.Query(context.Background(), BuildFieldMessage{
		Record: queryRecord{properties: map[string]string{"username": "bob"}},
		Title:  "Username",
		Kind:   core.PropertyKindProperty,
		Name:   "username",
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if field.Value != "bob" {
		t.Fatalf("expected record value, got %q", field.Value)
	}
}

func TestBuildFieldQuery_NilRecord(t *testing.T) {
	handler := NewBuildFieldQuery(&stubFacadeService{})
	_, err := handler.Query(context.Background(), BuildFieldMessage{Name: "username"})
	if err == nil {
		t.Fatalf("expected invalid input error")
	}
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		t.Fatalf("expected go-errors type, got %T", err)
	}
	if richErr.TextCode != core.EntryErrorBadInput {
		t.Fatalf("expected bad input code, got %q", richErr.TextCode)
	}
}

func TestBuildFieldQuery_MissingDependency(t *testing.T) {
	var handler *BuildFieldQuery
	_, err := handler.Query(context.Background(), BuildFieldMessage{})
	if err == nil || !strings.Contains(err.Error(), "field builder is required") {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestResolveEntryURLsQuery(t *testing.T) {
	service := &stubFacadeService{}
	handler := NewResolveEntryURLsQuery(service)

	urls, err := handler.Query(context.Background(), ResolveEntryURLsMessage{
		Properties: core.PropertyList{
			{Name: "username", Value: "bob"},
			{Name: "url", Value: "https://a.example"},
		},
		Preference: core.URLPreferenceAny,
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	expected := []string{"https://a.example"}
	if !reflect.DeepEqual(urls, expected) {
		t.Fatalf("expected %v, got %v", expected, urls)
	}
	if service.lastPreference != core.URLPreferenceAny {
		t.Fatalf("expected preference forwarded, got %q", service.lastPreference)
	}
}

func TestResolveFacadeURLsQuery(t *testing.T) {
	service := &stubFacadeService{}
	handler := NewResolveFacadeURLsQuery(service)

	urls, err := handler.Query(context.Background(), ResolveFacadeURLsMessage{
		Fields: []core.EntryFacadeField{
			{Field: core.PropertyKindProperty, Property: "url", Value: "https://a.example"},
			{Field: core.PropertyKindMeta, Property: "url", Value: "https://meta.example"},
		},
		Preference: core.URLPreferenceAny,
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	expected := []string{"https://a.example"}
	if !reflect.DeepEqual(urls, expected) {
		t.Fatalf("expected meta fields ignored, got %v", urls)
	}
}

func TestValidatePropertyNameQuery(t *testing.T) {
	service := &stubFacadeService{recognized: map[string]bool{"username": true}}
	handler := NewValidatePropertyNameQuery(service)

	ok, err := handler.Query(context.Background(), ValidatePropertyNameMessage{Name: "username"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if !ok {
		t.Fatalf("expected recognized name")
	}
	ok, err = handler.Query(context.Background(), ValidatePropertyNameMessage{Name: "totp"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if ok {
		t.Fatalf("expected unrecognized name")
	}
}

func TestMessageContracts(t *testing.T) {
	cases := []struct {
		msg interface {
			Type() string
			Validate() error
		}
		expectedType string
		valid        bool
	}{
		{BuildFieldMessage{Record: queryRecord{}, Name: "username"}, TypeBuildField, true},
		{BuildFieldMessage{Record: queryRecord{}}, TypeBuildField, false},
		{BuildFieldMessage{Name: "username"}, TypeBuildField, false},
		{ResolveEntryURLsMessage{}, TypeResolveEntryURLs, true},
		{ResolveFacadeURLsMessage{}, TypeResolveFacadeURLs, true},
		{ValidatePropertyNameMessage{Name: "username"}, TypeValidatePropertyName, true},
		{ValidatePropertyNameMessage{}, TypeValidatePropertyName, false},
	}
	for _, tc := range cases {
		if got := tc.msg.Type(); got != tc.expectedType {
			t.Fatalf("expected type %q, got %q", tc.expectedType, got)
		}
		err := tc.msg.Validate()
		if tc.valid && err != nil {
			t.Fatalf("expected %T to validate, got %v", tc.msg, err)
		}
		if !tc.valid && err == nil {
			t.Fatalf("expected %T to fail validation", tc.msg)
		}
	}
}
