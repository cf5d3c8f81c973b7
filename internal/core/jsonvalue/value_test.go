package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesMemberOrder(t *testing.T) {
	v, err := Parse([]byte(`{"z":1,"a":{"y":true,"b":null},"m":[1,"x"]}`))
	require.NoError(t, err)

	require.Equal(t, Object, v.Kind())
	var keys []string
	for _, m := range v.Members() {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)

	out, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":1,"a":{"y":true,"b":null},"m":[1,"x"]}`, string(out))
	assert.Equal(t, `{"z":1,"a":{"y":true,"b":null},"m":[1,"x"]}`, string(out))
}

func TestParse_DuplicateKeysKeepLastValue(t *testing.T) {
	v, err := Parse([]byte(`{"a":1,"b":2,"a":3}`))
	require.NoError(t, err)

	got, ok := v.Get("a")
	require.True(t, ok)
	assert.Equal(t, "3", got.Text())
	assert.Equal(t, "a", v.Members()[0].Key)
	assert.Equal(t, 2, v.Len())
}

func TestParse_Errors(t *testing.T) {
	cases := []string{"", "{", `{"a":}`, "[1,2", "[1] 2", "nope"}
	for _, c := range cases {
		_, err := Parse([]byte(c))
		assert.Error(t, err, "entrada %q", c)
	}
}

func TestLookup_DottedPath(t *testing.T) {
	v, err := Parse([]byte(`{"fipe":{"codigo":"001234-5","valor":{"value":45000}},"marca":"Fiat"}`))
	require.NoError(t, err)

	got, ok := v.Lookup("fipe.codigo")
	require.True(t, ok)
	assert.Equal(t, "001234-5", got.Text())

	_, ok = v.Lookup("fipe.inexistente")
	assert.False(t, ok)

	_, ok = v.Lookup("marca.nome")
	assert.False(t, ok)

	got, ok = v.Lookup("marca")
	require.True(t, ok)
	assert.Equal(t, "Fiat", got.Text())
}

func TestText_Scalars(t *testing.T) {
	assert.Equal(t, "", NullValue().Text())
	assert.Equal(t, "true", BoolValue(true).Text())
	assert.Equal(t, "250000", NumberValue("250000").Text())
	assert.Equal(t, "2.5", NumberValue("2.50").Text())
	assert.Equal(t, "1000", NumberValue("1e3").Text())
	assert.Equal(t, "texto", StringValue("texto").Text())
	assert.Equal(t, `[1,"a"]`, ArrayValue(NumberValue("1"), StringValue("a")).Text())
}
