package serializer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Parent   *node   `json:"parent"`
	Children []*node `json:"children,omitempty"`
	secret   string
}

type owner struct {
	Key   string `json:"key"`
	Shops []*shop
}

type shop struct {
	Ref   string `json:"ref"`
	Owner *owner `json:"owner"`
}

func (o *owner) SerializerID() any { return o.Key }

type audited struct {
	CreatedAt time.Time `json:"createdAt"`
}

type withEmbedded struct {
	audited
	ID    int64  `json:"id"`
	Skip  string `json:"-"`
	Plain string
}

func TestSerialize_SelfCycleKeepsOnlyID(t *testing.T) {
	n := &node{ID: 1, Name: "root", secret: "hidden"}
	n.Parent = n

	out, err := New().Serialize(n)
	require.NoError(t, err)

	m := out.(map[string]any)
	assert.Equal(t, int64(1), m["id"])
	assert.Equal(t, "root", m["name"])
	assert.Equal(t, int64(1), m["parent"])
	assert.Nil(t, m["children"])
	assert.NotContains(t, m, "secret")
}

func TestSerialize_MutualCycle(t *testing.T) {
	a := &node{ID: 1, Name: "a"}
	b := &node{ID: 2, Name: "b", Parent: a}
	a.Children = []*node{b}

	out, err := New().Serialize(a)
	require.NoError(t, err)

	m := out.(map[string]any)
	children := m["children"].([]any)
	require.Len(t, children, 1)
	child := children[0].(map[string]any)
	assert.Equal(t, int64(2), child["id"])
	assert.Equal(t, int64(1), child["parent"])
}

func TestSerialize_RepeatedReferenceUsesID(t *testing.T) {
	shared := &node{ID: 7, Name: "shared"}
	root := &node{ID: 1, Parent: shared, Children: []*node{shared}}

	out, err := New().Serialize(root)
	require.NoError(t, err)

	m := out.(map[string]any)
	parent := m["parent"].(map[string]any)
	assert.Equal(t, "shared", parent["name"])
	assert.Equal(t, []any{int64(7)}, m["children"])
}

func TestSerialize_IdentifiableOverridesIDField(t *testing.T) {
	o := &owner{Key: "own-1"}
	o.Shops = []*shop{{Ref: "s1", Owner: o}, {Ref: "s2", Owner: o}}

	out, err := New().Serialize(o)
	require.NoError(t, err)

	shops := out.(map[string]any)["Shops"].([]any)
	require.Len(t, shops, 2)
	for _, s := range shops {
		assert.Equal(t, "own-1", s.(map[string]any)["owner"])
	}
}

func TestSerialize_NestedEntitiesAsID(t *testing.T) {
	parent := &node{ID: 3, Name: "parent"}
	child := &node{ID: 4, Name: "child", Parent: parent}

	out, err := New(WithNestedEntitiesAsID()).Serialize(child)
	require.NoError(t, err)

	m := out.(map[string]any)
	assert.Equal(t, "child", m["name"])
	assert.Equal(t, int64(3), m["parent"])
}

func TestSerialize_EmbeddedAndTags(t *testing.T) {
	created := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	v := withEmbedded{audited: audited{CreatedAt: created}, ID: 5, Skip: "x", Plain: "p"}

	out, err := New().Serialize(v)
	require.NoError(t, err)

	m := out.(map[string]any)
	assert.Equal(t, int64(5), m["id"])
	assert.Equal(t, "p", m["Plain"])
	assert.NotContains(t, m, "Skip")
	assert.NotContains(t, m, "-")
}

func TestSerialize_TimeIsKeptAsValue(t *testing.T) {
	created := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	out, err := New().Serialize(audited{CreatedAt: created})
	require.NoError(t, err)
	assert.Equal(t, created, out.(map[string]any)["createdAt"])
}

func TestSerialize_CyclicContainersTerminate(t *testing.T) {
	m := map[string]any{"name": "loop"}
	m["self"] = m

	out, err := New().Serialize(m)
	require.NoError(t, err)
	got := out.(map[string]any)
	assert.Equal(t, "loop", got["name"])
	assert.Nil(t, got["self"])

	s := make([]any, 1)
	s[0] = s
	out, err = New().Serialize(s)
	require.NoError(t, err)
	assert.Equal(t, []any{nil}, out)
}

func TestSerialize_SharedContainerIsNotACycle(t *testing.T) {
	tags := []string{"a", "b"}
	out, err := New().Serialize(map[string]any{"x": tags, "y": tags})
	require.NoError(t, err)

	m := out.(map[string]any)
	assert.Equal(t, []any{"a", "b"}, m["x"])
	assert.Equal(t, []any{"a", "b"}, m["y"])
}

func TestSerialize_DeepChainDoesNotRecurse(t *testing.T) {
	const depth = 200_000
	head := &node{ID: 0}
	cur := head
	for i := 1; i < depth; i++ {
		next := &node{ID: int64(i)}
		cur.Parent = next
		cur = next
	}

	out, err := New().Serialize(head)
	require.NoError(t, err)

	count := 0
	for m, ok := out.(map[string]any); ok; m, ok = m["parent"].(map[string]any) {
		count++
	}
	assert.Equal(t, depth, count)
}

func TestSerialize_UnsupportedType(t *testing.T) {
	_, err := New().Serialize(map[string]any{"fn": func() {}})
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSerialize_Nil(t *testing.T) {
	out, err := New().Serialize(nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestSerializeList_PreservesOrderAndLength(t *testing.T) {
	items := []*node{{ID: 3}, {ID: 1}, {ID: 2}}

	out, err := New().SerializeList(items)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i, want := range []int64{3, 1, 2} {
		assert.Equal(t, want, out[i].(map[string]any)["id"])
	}
}

func TestSerializeList_ElementsAreIndependent(t *testing.T) {
	shared := &node{ID: 9, Name: "shared"}

	out, err := New().SerializeList([]*node{shared, shared})
	require.NoError(t, err)
	for _, item := range out {
		assert.Equal(t, "shared", item.(map[string]any)["name"])
	}
}

func TestSerializeList_EmptyAndInvalid(t *testing.T) {
	out, err := New().SerializeList([]*node(nil))
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	out, err = New().SerializeList(nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = New().SerializeList(42)
	require.ErrorIs(t, err, ErrUnsupportedType)
}
