// Package cast provides the attribute casters used by dstruct.
// Each caster is a pure, total function that coerces a raw value into the
// attribute kind representation or reports that no value could be produced.
// Casters never panic and never return partially converted values.
package cast
