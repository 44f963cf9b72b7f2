package dstruct

type (
	// Schema represents validation schema evaluated against struct canonical mapping
	Schema interface {
		Evaluate(canonical map[string]interface{}) ErrorMap
	}

	// SchemaFunc adapts a function to Schema
	SchemaFunc func(canonical map[string]interface{}) ErrorMap
)

// Evaluate calls f(canonical)
func (f SchemaFunc) Evaluate(canonical map[string]interface{}) ErrorMap {
	return f(canonical)
}

// AddSchema attaches validation schemas, evaluated in attachment order
func (s *Struct) AddSchema(schemas ...Schema) {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, schema := range schemas {
		if schema == nil {
			continue
		}
		s.schemas = append(s.schemas, schema)
	}
}

// Errors returns struct errors, the result is computed once and cached
func (s *Struct) Errors() ErrorMap {
	s.mux.Lock()
	defer s.mux.Unlock()
	if !s.evaluated {
		s.errors = s.evaluate()
		s.evaluated = true
	}
	return s.errors.Clone()
}

func (s *Struct) evaluate() ErrorMap {
	if s.unknownKey != nil {
		return s.unknownKey
	}
	var result = ErrorMap{}
	for _, schema := range s.schemas {
		result.Merge(schema.Evaluate(s.Canonical()))
	}
	return result
}

// Valid returns true if struct has no errors
func (s *Struct) Valid() bool {
	return s.Errors().IsEmpty()
}

// Validate returns struct errors as error or nil
func (s *Struct) Validate() error {
	if errs := s.Errors(); !errs.IsEmpty() {
		return errs
	}
	return nil
}
