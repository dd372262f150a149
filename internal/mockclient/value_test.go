package mockclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_RoundTrip(t *testing.T) {
	doc := NewDocument(map[string]any{"a": 1})
	client := NewClient()

	tests := []struct {
		name string
		kind Kind
		set  func(v *Value)
		get  func(v *Value) any
		want any
	}{
		{
			name: "bool",
			kind: KindBool,
			set:  func(v *Value) { v.SetBool(true) },
			get:  func(v *Value) any { return v.GetBool() },
			want: true,
		},
		{
			name: "uint32",
			kind: KindUint32,
			set:  func(v *Value) { v.SetUint32(42) },
			get:  func(v *Value) any { return v.GetUint32() },
			want: uint32(42),
		},
		{
			name: "const_char_ptr",
			kind: KindConstCharPtr,
			set:  func(v *Value) { v.SetConstCharPtr("hello") },
			get:  func(v *Value) any { return v.GetConstCharPtr() },
			want: "hello",
		},
		{
			name: "string_array",
			kind: KindStringArray,
			set:  func(v *Value) { v.SetStringArray([]string{"admin", "test"}) },
			get:  func(v *Value) any { return v.GetStringArray() },
			want: []string{"admin", "test"},
		},
		{
			name: "const_document_ptr",
			kind: KindConstDocumentPtr,
			set:  func(v *Value) { v.SetConstDocumentPtr(doc) },
			get:  func(v *Value) any { return v.GetConstDocumentPtr() },
			want: doc,
		},
		{
			name: "client_ptr",
			kind: KindClientPtr,
			set:  func(v *Value) { v.SetClientPtr(client) },
			get:  func(v *Value) any { return v.GetClientPtr() },
			want: client,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			assert.Equal(t, KindNone, v.Kind(), "fresh container must hold nothing")

			tt.set(&v)
			assert.Equal(t, tt.kind, v.Kind(), "discriminant must follow the setter")
			assert.Equal(t, tt.want, tt.get(&v), "get after set must round-trip")
		})
	}
}

func TestValue_WrongKindPanics(t *testing.T) {
	var v Value
	v.SetBool(true)

	// A mismatched read must never coerce or zero-fill.
	assert.PanicsWithValue(t,
		`future value: read as "const_char_ptr", holds "bool"`,
		func() { v.GetConstCharPtr() })

	// An empty container has no readable kind at all.
	var empty Value
	assert.Panics(t, func() { empty.GetBool() })
}

func TestValue_KindString(t *testing.T) {
	assert.Equal(t, "none", KindNone.String())
	assert.Equal(t, "const_document_ptr_ptr", KindConstDocumentPtrPtr.String())
	assert.Equal(t, "unknown", Kind(200).String())
}

func TestValue_SetReleasesPreviousOwned(t *testing.T) {
	doc := NewDocument(nil)

	var v Value
	v.SetDocumentPtr(doc)
	require.False(t, doc.Released)

	v.SetBool(true)
	assert.True(t, doc.Released, "overwriting an owned payload must release it")
	assert.Equal(t, true, v.GetBool())
}

func TestValue_ReleaseOwnedExactlyOnce(t *testing.T) {
	cerr := &ClientError{Code: 11, Message: "boom"}

	var v Value
	v.SetErrorPtr(cerr)

	v.Release()
	assert.True(t, cerr.Released)
	assert.Equal(t, KindNone, v.Kind())

	// The container is empty now; releasing again must not reach the
	// hook a second time (the hook panics if it does).
	assert.NotPanics(t, func() { v.Release() })
}

func TestValue_ReleaseUnownedIsNoop(t *testing.T) {
	var v Value
	v.SetConstCharPtr("hello")
	v.Release()
	assert.Equal(t, KindNone, v.Kind())
}

func TestValue_ReleaseNilOwnedPayload(t *testing.T) {
	var v Value
	v.SetDocumentPtr(nil)
	assert.NotPanics(t, func() { v.Release() })
}
