package dstruct

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Registry represents struct types registry
type Registry struct {
	mux     sync.RWMutex
	types   map[string]*Type
	options []Option
	logger  *slog.Logger
}

var defaultRegistry = NewRegistry()

// NewRegistry creates a registry, supplied options are applied to every declared type
func NewRegistry(opts ...Option) *Registry {
	return &Registry{types: map[string]*Type{}, options: opts, logger: newOptions(opts).logger}
}

// Declare declares a struct type, previous declaration with the same name is replaced
func (r *Registry) Declare(name string, attributes Attributes, opts ...Option) *Type {
	return r.Register(NewType(name, attributes, r.typeOptions(opts)...))
}

// Register registers a struct type under its name, previous registration is replaced
func (r *Registry) Register(aType *Type) *Type {
	r.mux.Lock()
	_, replaced := r.types[aType.name]
	r.types[aType.name] = aType
	r.mux.Unlock()
	if replaced {
		r.logger.Debug("replaced struct type declaration", "type", aType.name, "attributes", aType.Len())
	} else {
		r.logger.Debug("declared struct type", "type", aType.name, "attributes", aType.Len())
	}
	return aType
}

func (r *Registry) typeOptions(opts []Option) []Option {
	if len(r.options) == 0 {
		return opts
	}
	ret := make([]Option, 0, len(r.options)+len(opts))
	ret = append(ret, r.options...)
	return append(ret, opts...)
}

// Lookup returns registered type or nil
func (r *Registry) Lookup(name string) *Type {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.types[name]
}

// Types returns registered types sorted by name
func (r *Registry) Types() []*Type {
	r.mux.RLock()
	result := make([]*Type, 0, len(r.types))
	for _, aType := range r.types {
		result = append(result, aType)
	}
	r.mux.RUnlock()
	sort.Slice(result, func(i, j int) bool { return result[i].name < result[j].name })
	return result
}

// New creates a struct of the named type
func (r *Registry) New(name string, input Input) (*Struct, error) {
	aType := r.Lookup(name)
	if aType == nil {
		return nil, fmt.Errorf("failed to lookup struct type: %v", name)
	}
	return New(aType, input), nil
}

// Declare declares a struct type with the default registry
func Declare(name string, attributes Attributes, opts ...Option) *Type {
	return defaultRegistry.Declare(name, attributes, opts...)
}

// Lookup returns a struct type declared with the default registry
func Lookup(name string) *Type {
	return defaultRegistry.Lookup(name)
}
