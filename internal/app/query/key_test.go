package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewKey(t *testing.T) {
	k := NewKey("projects", "acme")

	assert.Equal(t, "projects"+keySep+"acme", k.String())
}

func Test_Key_Child_DoesNotMutateParent(t *testing.T) {
	parent := NewKey("projects", "acme")

	child := parent.Child("prod", "services")
	other := parent.Child("staging")

	assert.Equal(t, "projects"+keySep+"acme", parent.String())
	assert.Equal(t, "projects"+keySep+"acme"+keySep+"prod"+keySep+"services", child.String())
	assert.Equal(t, "projects"+keySep+"acme"+keySep+"staging", other.String())
}

func Test_Key_ChildFilter_StructurallyEqualFiltersShareKey(t *testing.T) {
	type filter struct {
		Level string `json:"level,omitempty"`
		Query string `json:"query,omitempty"`
	}

	base := NewKey("logs")

	a := base.ChildFilter(filter{Level: "ERROR", Query: "timeout"})
	b := base.ChildFilter(filter{Level: "ERROR", Query: "timeout"})
	c := base.ChildFilter(filter{Level: "INFO"})

	assert.Equal(t, a.String(), b.String())
	assert.NotEqual(t, a.String(), c.String())
}

func Test_Key_HasPrefix(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		prefix   Key
		expected bool
	}{
		{name: "Key is its own prefix", key: NewKey("a", "b"), prefix: NewKey("a", "b"), expected: true},
		{name: "Parent is a prefix", key: NewKey("a", "b", "c"), prefix: NewKey("a", "b"), expected: true},
		{name: "Sibling is not a prefix", key: NewKey("a", "b"), prefix: NewKey("a", "x"), expected: false},
		{name: "Longer key is not a prefix", key: NewKey("a"), prefix: NewKey("a", "b"), expected: false},
		{name: "Segment boundary respected", key: NewKey("ab"), prefix: NewKey("a"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.key.HasPrefix(tt.prefix))
		})
	}
}
