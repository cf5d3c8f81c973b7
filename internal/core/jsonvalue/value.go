// Package jsonvalue modela valores JSON de formato desconhecido como uma união tipada,
// preservando a ordem das chaves de objetos.
package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Kind é o tipo de um Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "null"
	}
}

// Member é uma entrada de objeto.
type Member struct {
	Key   string
	Value Value
}

// Value é um valor JSON. O valor zero é null.
type Value struct {
	kind    Kind
	text    string // literal de string ou número
	boolean bool
	items   []Value
	members []Member
}

// NullValue retorna um null.
func NullValue() Value { return Value{} }

// BoolValue cria um booleano.
func BoolValue(b bool) Value { return Value{kind: Bool, boolean: b} }

// NumberValue cria um número a partir do literal JSON.
func NumberValue(literal string) Value { return Value{kind: Number, text: literal} }

// StringValue cria uma string.
func StringValue(s string) Value { return Value{kind: String, text: s} }

// ArrayValue cria um array.
func ArrayValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: Array, items: items}
}

// ObjectValue cria um objeto. Chaves repetidas ficam com o último valor, na posição da primeira.
func ObjectValue(members ...Member) Value {
	out := make([]Member, 0, len(members))
	for _, m := range members {
		out = setMember(out, m.Key, m.Value)
	}
	return Value{kind: Object, members: out}
}

func setMember(members []Member, key string, v Value) []Member {
	for i := range members {
		if members[i].Key == key {
			members[i].Value = v
			return members
		}
	}
	return append(members, Member{Key: key, Value: v})
}

// Kind retorna o tipo do valor.
func (v Value) Kind() Kind { return v.kind }

// IsNull indica null.
func (v Value) IsNull() bool { return v.kind == Null }

// Items retorna os elementos de um array (nil para outros tipos).
func (v Value) Items() []Value { return v.items }

// Members retorna as entradas de um objeto na ordem original.
func (v Value) Members() []Member { return v.members }

// Len retorna o número de elementos de um array ou de entradas de um objeto.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.members)
	}
	return 0
}

// Get retorna a entrada do objeto com a chave informada.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != Object {
		return Value{}, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Lookup resolve um caminho com pontos ("fipe.codigo") em objetos aninhados.
// Caminhos sem ponto são tratados como chave simples.
func (v Value) Lookup(path string) (Value, bool) {
	if !strings.Contains(path, ".") {
		return v.Get(path)
	}
	current := v
	for _, key := range strings.Split(path, ".") {
		next, ok := current.Get(key)
		if !ok {
			return Value{}, false
		}
		current = next
	}
	return current, true
}

// Str retorna o conteúdo de uma string.
func (v Value) Str() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.text, true
}

// Text converte escalares para texto: strings como estão, números no formato decimal
// mais curto, booleanos como true/false e null como "". Arrays e objetos viram JSON.
func (v Value) Text() string {
	switch v.kind {
	case Null:
		return ""
	case Bool:
		return strconv.FormatBool(v.boolean)
	case String:
		return v.text
	case Number:
		return formatNumber(v.text)
	default:
		b, _ := v.MarshalJSON()
		return string(b)
	}
}

func formatNumber(literal string) string {
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsInf(f, 0) || math.Abs(f) >= 1e21 {
		return literal
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MarshalJSON serializa o valor preservando a ordem das chaves.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		buf.WriteString(strconv.FormatBool(v.boolean))
	case Number:
		buf.WriteString(v.text)
	case String:
		b, err := json.Marshal(v.text)
		if err != nil {
			return err
		}
		buf.Write(b)
	case Array:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(m.Key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// Parse decodifica um documento JSON completo.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("conteúdo inesperado após o documento JSON")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}
	switch t := tok.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(t), nil
	case json.Number:
		return NumberValue(t.String()), nil
	case string:
		return StringValue(t), nil
	case json.Delim:
		switch t {
		case '[':
			items := []Value{}
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{kind: Array, items: items}, nil
		case '{':
			members := []Member{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("chave de objeto inválida: %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				members = setMember(members, key, val)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{kind: Object, members: members}, nil
		}
	}
	return Value{}, fmt.Errorf("token JSON inesperado: %v", tok)
}
