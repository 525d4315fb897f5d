package codec_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/harborq/brokerpool/codec"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestEncoding(t *testing.T) {
	tests := []struct {
		name     string
		from     interface{}
		expected string
		codec    codec.Codec
	}{
		{"string/string", "hello", "hello", codec.String()},
		{"string/byte-slice", []byte("hello"), "hello", codec.String()},
		{"string/error", errors.New("hello"), "hello", codec.String()},
		{"string/stringer", bytes.NewBuffer([]byte("hello")), "hello", codec.String()},
		{"int64/int64", int64(10), "10", codec.Int64()},
		{"float64/float64", 3.14, "3.14", codec.Float64()},
		{"json/string", "hello", `"hello"`, codec.JSON()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := test.codec.Encode(test.from)
			require.NoError(t, err)
			require.Equal(t, test.expected, string(res))
		})
	}
}

func TestEncodingErrors(t *testing.T) {
	tests := []struct {
		name      string
		from      interface{}
		errString string
		codec     codec.Codec
	}{
		{"string/int", 10, "10 must be a string, a stringer, an error or a byte slice, got int instead", codec.String()},
		{"int64/string", "hello", "hello must be an int64, got string instead", codec.Int64()},
		{"float64/string", "hello", "hello must be a float64, got string instead", codec.Float64()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.codec.Encode(test.from)
			require.Error(t, err)
			require.EqualError(t, err, test.errString)
		})
	}
}

func TestDecoding(t *testing.T) {
	var s string
	var b []byte
	var i int64
	var f float64

	tests := []struct {
		name     string
		data     string
		to       interface{}
		expected interface{}
		codec    codec.Codec
	}{
		{"string/string", "hello", &s, "hello", codec.String()},
		{"string/byte-slice", "hello", &b, []byte("hello"), codec.String()},
		{"int64/int64", "10", &i, int64(10), codec.Int64()},
		{"float64/float64", "3.14", &f, 3.14, codec.Float64()},
		{"json/string", `"hello"`, &s, "hello", codec.JSON()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.codec.Decode([]byte(test.data), test.to)
			require.NoError(t, err)
			got := reflect.ValueOf(test.to).Elem().Interface()
			require.Equal(t, test.expected, got)
		})
	}
}

func TestDecodingErrors(t *testing.T) {
	var i int64

	tests := []struct {
		name  string
		data  string
		to    interface{}
		codec codec.Codec
	}{
		{"string/non-pointer", "hello", 10, codec.String()},
		{"int64/bad-target", "10", &struct{}{}, codec.Int64()},
		{"int64/bad-data", "hello", &i, codec.Int64()},
		{"float64/bad-target", "3.14", &struct{}{}, codec.Float64()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.codec.Decode([]byte(test.data), test.to)
			require.Error(t, err)
		})
	}
}
