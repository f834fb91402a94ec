// Package entryfacade builds display/edit-ready views of credential record
// fields and resolves which of a record's arbitrarily named properties hold
// URLs. The record itself is an external collaborator consumed through the
// core.RecordReader contract; this module never manages its storage,
// encryption, or lifecycle.
package entryfacade

import (
	"github.com/goliatone/go-entry-facade/core"
	facadequery "github.com/goliatone/go-entry-facade/query"
)

type Config = core.Config

type URLConfig = core.URLConfig

type PropertyConfig = core.PropertyConfig

type Option = core.Option

type Service = core.Service

type ServiceDependencies = core.ServiceDependencies

type RecordReader = core.RecordReader

type EntryFacadeField = core.EntryFacadeField

type FieldOptions = core.FieldOptions

type Property = core.Property

type PropertyList = core.PropertyList

type PropertyKind = core.PropertyKind

type URLPreference = core.URLPreference

type PropertyNameSet = core.PropertyNameSet

type BuildFieldMessage = facadequery.BuildFieldMessage

type ResolveEntryURLsMessage = facadequery.ResolveEntryURLsMessage

type ResolveFacadeURLsMessage = facadequery.ResolveFacadeURLsMessage

type ValidatePropertyNameMessage = facadequery.ValidatePropertyNameMessage

const (
	PropertyKindProperty  = core.PropertyKindProperty
	PropertyKindMeta      = core.PropertyKindMeta
	PropertyKindAttribute = core.PropertyKindAttribute

	URLPreferenceAny     = core.URLPreferenceAny
	URLPreferenceGeneral = core.URLPreferenceGeneral
	URLPreferenceLogin   = core.URLPreferenceLogin
	URLPreferenceIcon    = core.URLPreferenceIcon
)

var (
	WithLogger                  = core.WithLogger
	WithLoggerProvider          = core.WithLoggerProvider
	WithMetricsRecorder         = core.WithMetricsRecorder
	WithErrorFactory            = core.WithErrorFactory
	WithErrorMapper             = core.WithErrorMapper
	WithConfigProvider          = core.WithConfigProvider
	WithOptionsResolver         = core.WithOptionsResolver
	WithRecognizedPropertyNames = core.WithRecognizedPropertyNames

	NewFieldDescriptor = core.NewFieldDescriptor
	EntryURLs          = core.EntryURLs
	FacadeURLs         = core.FacadeURLs
	PropertyValue      = core.PropertyValue
	NewPropertyNameSet = core.NewPropertyNameSet
	IsURLShapedName    = core.IsURLShapedName
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

func NewService(cfg Config, opts ...Option) (*Service, error) {
	return core.NewService(cfg, opts...)
}

func Setup(cfg Config, opts ...Option) (*Service, error) {
	return core.Setup(cfg, opts...)
}
