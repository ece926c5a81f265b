/*
 * Copyright (c) 2026 RustyDB Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_TypeAndAccessors(t *testing.T) {
	assert.Equal(t, TypeInteger, NewInteger(42).Type())
	assert.Equal(t, int64(42), NewInteger(42).Int())

	assert.Equal(t, TypeFloat, NewFloat(3.14).Type())
	assert.Equal(t, TypeText, NewText("hello").Type())
	assert.Equal(t, TypeBoolean, NewBoolean(true).Type())
	assert.Equal(t, TypeTimestamp, NewTimestamp(time.Now()).Type())

	assert.True(t, Null.IsNull())
	assert.Equal(t, TypeNull, Null.Type())
}

func TestValue_ZeroValueIsNull(t *testing.T) {
	var v Value
	assert.True(t, v.IsNull())
	assert.Equal(t, TypeNull, v.Type())
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, NewInteger(1).Equal(NewInteger(1)))
	assert.False(t, NewInteger(1).Equal(NewInteger(2)))
	assert.True(t, NewText("a").Equal(NewText("a")))
	assert.True(t, NewBoolean(false).Equal(NewBoolean(false)))
	assert.True(t, Null.Equal(Null))

	// Cross-type comparison is always false, even for equal numbers.
	assert.False(t, NewInteger(1).Equal(NewFloat(1.0)))
	assert.False(t, NewInteger(1).Equal(Null))
}

func TestValue_Equal_TimestampsAcrossZones(t *testing.T) {
	utc := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	est := utc.In(time.FixedZone("EST", -5*3600))
	assert.True(t, NewTimestamp(utc).Equal(NewTimestamp(est)))
}

func TestValue_CastTo_Identity(t *testing.T) {
	v, err := NewInteger(7).CastTo(TypeInteger)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Int())
}

func TestValue_CastTo_NullToAnything(t *testing.T) {
	for _, target := range []DataType{TypeInteger, TypeFloat, TypeText, TypeBoolean, TypeTimestamp} {
		v, err := Null.CastTo(target)
		require.NoError(t, err)
		assert.True(t, v.IsNull())
	}
}

func TestValue_CastTo_Integer(t *testing.T) {
	f, err := NewInteger(3).CastTo(TypeFloat)
	require.NoError(t, err)
	assert.Equal(t, 3.0, f.Float())

	s, err := NewInteger(3).CastTo(TypeText)
	require.NoError(t, err)
	assert.Equal(t, "3", s.Text())

	b, err := NewInteger(0).CastTo(TypeBoolean)
	require.NoError(t, err)
	assert.False(t, b.Bool())

	b, err = NewInteger(-5).CastTo(TypeBoolean)
	require.NoError(t, err)
	assert.True(t, b.Bool())
}

func TestValue_CastTo_Float(t *testing.T) {
	i, err := NewFloat(3.9).CastTo(TypeInteger)
	require.NoError(t, err)
	assert.Equal(t, int64(3), i.Int())

	b, err := NewFloat(0.0).CastTo(TypeBoolean)
	require.NoError(t, err)
	assert.False(t, b.Bool())
}

func TestValue_CastTo_TextParsing(t *testing.T) {
	i, err := NewText("42").CastTo(TypeInteger)
	require.NoError(t, err)
	assert.Equal(t, int64(42), i.Int())

	f, err := NewText("2.5").CastTo(TypeFloat)
	require.NoError(t, err)
	assert.Equal(t, 2.5, f.Float())

	for _, s := range []string{"true", "TRUE", "1", "yes", "Y"} {
		b, err := NewText(s).CastTo(TypeBoolean)
		require.NoError(t, err, "input %q", s)
		assert.True(t, b.Bool(), "input %q", s)
	}
	for _, s := range []string{"false", "0", "no", "N"} {
		b, err := NewText(s).CastTo(TypeBoolean)
		require.NoError(t, err, "input %q", s)
		assert.False(t, b.Bool(), "input %q", s)
	}
}

func TestValue_CastTo_Errors(t *testing.T) {
	_, err := NewText("abc").CastTo(TypeInteger)
	require.Error(t, err)

	_, err = NewText("maybe").CastTo(TypeBoolean)
	require.Error(t, err)

	_, err = NewBoolean(true).CastTo(TypeTimestamp)
	require.Error(t, err)
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "NULL", Null.String())
	assert.Equal(t, "42", NewInteger(42).String())
	assert.Equal(t, "hello", NewText("hello").String())
	assert.Equal(t, "true", NewBoolean(true).String())
}

func TestValue_MarshalJSON(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{NewInteger(1), "1"},
		{NewFloat(2.5), "2.5"},
		{NewText("hi"), `"hi"`},
		{NewBoolean(true), "true"},
		{Null, "null"},
	}
	for _, tc := range cases {
		data, err := json.Marshal(tc.value)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(data))
	}
}

func TestParseDataType_Aliases(t *testing.T) {
	cases := map[string]DataType{
		"INTEGER":   TypeInteger,
		"int":       TypeInteger,
		"BIGINT":    TypeInteger,
		"FLOAT":     TypeFloat,
		"real":      TypeFloat,
		"DOUBLE":    TypeFloat,
		"TEXT":      TypeText,
		"VARCHAR":   TypeText,
		"string":    TypeText,
		"BOOLEAN":   TypeBoolean,
		"bool":      TypeBoolean,
		"TIMESTAMP": TypeTimestamp,
		"datetime":  TypeTimestamp,
	}
	for name, want := range cases {
		got, err := ParseDataType(name)
		require.NoError(t, err, "type %q", name)
		assert.Equal(t, want, got, "type %q", name)
	}

	_, err := ParseDataType("BLOB")
	require.Error(t, err)
}
