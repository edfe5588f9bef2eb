// Package serializer turns entity graphs into JSON-ready trees of maps, slices and scalars.
//
// Every pointer to a struct is treated as an entity. The first time an entity is reached it is
// expanded into a map keyed by its json field names; every later reference to the same entity
// within one Serialize call is replaced by the entity identifier, so self-referencing and
// mutually-referencing graphs terminate. Traversal runs on an explicit work stack, so deep
// graphs do not grow the goroutine stack.
package serializer

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrUnsupportedType is returned for values that have no JSON representation.
var ErrUnsupportedType = errors.New("serializer: unsupported type")

// Identifiable lets an entity choose the value written in place of a repeated reference.
// Entities without it fall back to an ID or Id field.
type Identifiable interface {
	SerializerID() any
}

// Option configures a Serializer.
type Option func(*Serializer)

// WithNestedEntitiesAsID replaces every nested entity by its identifier, not only repeated ones.
func WithNestedEntitiesAsID() Option {
	return func(s *Serializer) {
		s.nestedAsID = true
	}
}

// Serializer is safe for concurrent use; all traversal state lives in a single call.
type Serializer struct {
	nestedAsID bool
}

// New builds a Serializer.
func New(opts ...Option) *Serializer {
	s := &Serializer{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Serialize converts v into map[string]any, []any and scalar values.
func (s *Serializer) Serialize(v any) (any, error) {
	var out any
	w := newWalker(s)
	w.push(task{value: reflect.ValueOf(v), assign: func(x any) { out = x }})
	if err := w.run(); err != nil {
		return nil, err
	}
	return out, nil
}

// SerializeList serializes each element of a slice or array independently, preserving order.
// A nil or empty input yields an empty, non-nil slice.
func (s *Serializer) SerializeList(items any) ([]any, error) {
	if items == nil {
		return []any{}, nil
	}
	v := reflect.ValueOf(items)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: SerializeList expects a slice, got %s", ErrUnsupportedType, v.Type())
	}
	out := make([]any, v.Len())
	for i := range v.Len() {
		item, err := s.Serialize(v.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = item
	}
	return out, nil
}

var (
	timeType          = reflect.TypeOf(time.Time{})
	jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
)

type entityKey struct {
	ptr uintptr
	typ reflect.Type
}

type containerKey struct {
	ptr uintptr
	len int
	typ reflect.Type
}

// task either encodes value through assign, or, when release is set, leaves a container.
type task struct {
	value   reflect.Value
	depth   int
	assign  func(any)
	release *containerKey
}

type walker struct {
	s       *Serializer
	stack   []task
	visited map[entityKey]struct{}
	// containers on the current path; reaching one again is a cycle without an identifier
	path map[containerKey]struct{}
}

func newWalker(s *Serializer) *walker {
	return &walker{
		s:       s,
		visited: map[entityKey]struct{}{},
		path:    map[containerKey]struct{}{},
	}
}

func (w *walker) push(t task) {
	w.stack = append(w.stack, t)
}

func (w *walker) run() error {
	for len(w.stack) > 0 {
		t := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if t.release != nil {
			delete(w.path, *t.release)
			continue
		}
		if err := w.visit(t); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) visit(t task) error {
	v := t.value
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			t.assign(nil)
			return nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		t.assign(nil)
		return nil
	}
	if isOpaque(v.Type()) {
		t.assign(v.Interface())
		return nil
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			t.assign(nil)
			return nil
		}
		if isOpaque(v.Elem().Type()) {
			t.assign(v.Elem().Interface())
			return nil
		}
		if v.Elem().Kind() == reflect.Struct {
			key := entityKey{ptr: v.Pointer(), typ: v.Type()}
			if _, seen := w.visited[key]; seen || (w.s.nestedAsID && t.depth > 0) {
				t.assign(identifierOf(v))
				return nil
			}
			w.visited[key] = struct{}{}
			w.push(task{value: v.Elem(), depth: t.depth, assign: t.assign})
			return nil
		}
		if !w.enter(containerKey{ptr: v.Pointer(), typ: v.Type()}) {
			t.assign(nil)
			return nil
		}
		w.push(task{value: v.Elem(), depth: t.depth, assign: t.assign})
		return nil

	case reflect.Struct:
		w.visitStruct(v, t)
		return nil

	case reflect.Slice:
		if v.IsNil() {
			t.assign(nil)
			return nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			t.assign(v.Interface())
			return nil
		}
		if !w.enter(containerKey{ptr: v.Pointer(), len: v.Len(), typ: v.Type()}) {
			t.assign(nil)
			return nil
		}
		w.visitSequence(v, t)
		return nil

	case reflect.Array:
		w.visitSequence(v, t)
		return nil

	case reflect.Map:
		if v.IsNil() {
			t.assign(nil)
			return nil
		}
		if !w.enter(containerKey{ptr: v.Pointer(), typ: v.Type()}) {
			t.assign(nil)
			return nil
		}
		return w.visitMap(v, t)

	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		t.assign(v.Interface())
		return nil

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
	}
}

// enter marks a container as being on the current path and schedules its release.
func (w *walker) enter(key containerKey) bool {
	if _, onPath := w.path[key]; onPath {
		return false
	}
	w.path[key] = struct{}{}
	w.push(task{release: &key})
	return true
}

func (w *walker) visitStruct(v reflect.Value, t task) {
	fields := collectFields(v)
	out := make(map[string]any, len(fields))
	t.assign(out)
	// pushed in reverse so fields are visited in declaration order
	for i := len(fields) - 1; i >= 0; i-- {
		name := fields[i].name
		w.push(task{
			value:  fields[i].value,
			depth:  t.depth + 1,
			assign: func(x any) { out[name] = x },
		})
	}
}

func (w *walker) visitSequence(v reflect.Value, t task) {
	out := make([]any, v.Len())
	t.assign(out)
	for i := v.Len() - 1; i >= 0; i-- {
		idx := i
		w.push(task{
			value:  v.Index(i),
			depth:  t.depth + 1,
			assign: func(x any) { out[idx] = x },
		})
	}
}

func (w *walker) visitMap(v reflect.Value, t task) error {
	type entry struct {
		key   string
		value reflect.Value
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		key, err := mapKey(iter.Key())
		if err != nil {
			return err
		}
		entries = append(entries, entry{key: key, value: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	out := make(map[string]any, len(entries))
	t.assign(out)
	for i := len(entries) - 1; i >= 0; i-- {
		key := entries[i].key
		w.push(task{
			value:  entries[i].value,
			depth:  t.depth + 1,
			assign: func(x any) { out[key] = x },
		})
	}
	return nil
}

type field struct {
	name  string
	value reflect.Value
}

// collectFields lists exported fields by json name. Embedded structs are flattened and
// shallower fields win name clashes.
func collectFields(v reflect.Value) []field {
	typ := v.Type()
	fields := make([]field, 0, typ.NumField())
	seen := make(map[string]struct{}, typ.NumField())
	var embedded []reflect.Value

	for i := range typ.NumField() {
		sf := typ.Field(i)
		name, skip := jsonName(sf)
		if skip {
			continue
		}
		fv := v.Field(i)
		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct && !isOpaque(sf.Type) {
			embedded = append(embedded, fv)
			continue
		}
		if !sf.IsExported() || !fv.CanInterface() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		fields = append(fields, field{name: name, value: fv})
	}
	for _, ev := range embedded {
		for _, f := range collectFields(ev) {
			if _, dup := seen[f.name]; dup {
				continue
			}
			seen[f.name] = struct{}{}
			fields = append(fields, f)
		}
	}
	return fields
}

func jsonName(sf reflect.StructField) (string, bool) {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return "", false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

func mapKey(k reflect.Value) (string, error) {
	switch k.Kind() {
	case reflect.String:
		return k.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	default:
		return "", fmt.Errorf("%w: map key %s", ErrUnsupportedType, k.Type())
	}
}

func identifierOf(ptr reflect.Value) any {
	if id, ok := ptr.Interface().(Identifiable); ok {
		return id.SerializerID()
	}
	elem := ptr.Elem()
	for _, name := range []string{"ID", "Id"} {
		if f := elem.FieldByName(name); f.IsValid() && f.CanInterface() {
			return f.Interface()
		}
	}
	return nil
}

// isOpaque reports types that already know how to encode themselves.
func isOpaque(t reflect.Type) bool {
	if t == timeType {
		return true
	}
	return t.Kind() != reflect.Interface && t.Kind() != reflect.Pointer && t.Implements(jsonMarshalerType)
}
