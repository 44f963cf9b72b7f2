package dstruct

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/xunsafe"
)

func TestMarker_IsSet(t *testing.T) {

	var testCases = []struct {
		description string
		provider    func() interface{}
		expectSet   []string
		expectUnset []string
		expectError bool
	}{
		{
			description: "aligned set marker",
			provider: func() interface{} {
				type EntityHas struct {
					Id     bool
					Name   bool
					Active bool
				}
				type Entity struct {
					Id     int
					Name   string
					Active bool
					Has    *EntityHas `setMarker:"true"`
				}
				return &Entity{Has: &EntityHas{Id: true, Active: true}, Id: 1, Active: true}
			},
			expectSet:   []string{"Id", "Active"},
			expectUnset: []string{"Name"},
		},
		{
			description: "value holder",
			provider: func() interface{} {
				type EntityHas struct {
					Id   bool
					Name bool
				}
				type Entity struct {
					Id   int
					Name string
					Has  EntityHas `setMarker:"true"`
				}
				return &Entity{Has: EntityHas{Name: true}, Name: "abc"}
			},
			expectSet:   []string{"Name"},
			expectUnset: []string{"Id"},
		},
		{
			description: "more fields in the owner struct",
			provider: func() interface{} {
				type EntityHas struct {
					Id     bool
					Name   bool
					Active bool
				}
				type Entity struct {
					Id     int
					Name   string
					Active bool
					Nums   []int
					Has    *EntityHas `presenceIndex:"true"`
				}
				return &Entity{Has: &EntityHas{Name: true}, Name: "abc"}
			},
			expectSet:   []string{"Name"},
			expectUnset: []string{"Id", "Active", "Nums"},
		},
		{
			description: "more fields in the marker struct",
			provider: func() interface{} {
				type EntityHas struct {
					Id     bool
					Name   bool
					Active bool
					Nums   bool
				}
				type Entity struct {
					Id     int
					Name   string
					Active bool
					Has    *EntityHas `setMarker:"true"`
				}
				return &Entity{Has: &EntityHas{Name: true}, Name: "abc"}
			},
			expectError: true,
		},
		{
			description: "non bool marker field",
			provider: func() interface{} {
				type EntityHas struct {
					Id int
				}
				type Entity struct {
					Id  int
					Has *EntityHas `setMarker:"true"`
				}
				return &Entity{}
			},
			expectError: true,
		},
		{
			description: "no holder",
			provider: func() interface{} {
				type Entity struct {
					Id int
				}
				return &Entity{}
			},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		value := testCase.provider()
		marker, err := NewMarker(reflect.TypeOf(value))

		if testCase.expectError {
			assert.NotNilf(t, err, testCase.description)
			continue
		}

		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		valuePtr := xunsafe.AsPointer(value)
		for _, name := range testCase.expectSet {
			index := marker.Index(name)
			if !assert.NotEqual(t, index, -1, testCase.description) {
				continue
			}
			assert.True(t, marker.IsSet(valuePtr, index), name+" failed set test for "+testCase.description)
		}
		for _, name := range testCase.expectUnset {
			index := marker.Index(name)
			if !assert.NotEqual(t, index, -1, testCase.description) {
				continue
			}
			assert.False(t, marker.IsSet(valuePtr, index), name+" failed unset test for "+testCase.description)
		}
	}

}

func TestMarker_Set(t *testing.T) {
	type EntityHas struct {
		Id   bool
		Name bool
	}
	type Entity struct {
		Id   int
		Name string
		Has  *EntityHas `setMarker:"true"`
	}
	marker, err := NewMarker(reflect.TypeOf(Entity{}))
	assert.Nil(t, err)
	entity := &Entity{}
	ptr := xunsafe.AsPointer(entity)
	assert.True(t, marker.IsSet(ptr, 0), "without holder all fields are assumed set")
	assert.NotNil(t, marker.Set(ptr, 0, true))

	marker.EnsureHolder(ptr)
	assert.NotNil(t, entity.Has)
	assert.Nil(t, marker.Set(ptr, marker.Index("Name"), true))
	assert.Equal(t, &EntityHas{Name: true}, entity.Has)
	assert.Nil(t, marker.SetAll(ptr, true))
	assert.Equal(t, &EntityHas{Id: true, Name: true}, entity.Has)
	assert.NotNil(t, marker.Set(ptr, 5, true))
	assert.True(t, HasMarker(reflect.TypeOf(entity)))
	assert.False(t, HasMarker(reflect.TypeOf(EntityHas{})))
}
