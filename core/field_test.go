package core

import (
	"fmt"
	"testing"
	"time"
)

func TestField_StringValue(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{
			name:  "String field",
			field: Field{Type: StringType, Str: "hello"},
			want:  "hello",
		},
		{
			name:  "Int field",
			field: Field{Type: IntType, Int64: 42},
			want:  "42",
		},
		{
			name:  "Int64 field",
			field: Field{Type: Int64Type, Int64: 1234567890},
			want:  "1234567890",
		},
		{
			name:  "Bool field (true)",
			field: Field{Type: BoolType, Int64: 1},
			want:  "true",
		},
		{
			name:  "Bool field (false)",
			field: Field{Type: BoolType, Int64: 0},
			want:  "false",
		},
		{
			name:  "Float64 field",
			field: Field{Type: Float64Type, Float64: 3.14},
			want:  "3.14",
		},
		{
			name:  "Duration field",
			field: Field{Type: DurationType, Int64: int64(5 * time.Second)},
			want:  "5s",
		},
		{
			name:  "Error field",
			field: Field{Type: ErrorType, Str: "an error occurred"},
			want:  "an error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.StringValue(); got != tt.want {
				t.Errorf("Field.StringValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestField_Value(t *testing.T) {
	ts := time.Date(2026, 3, 8, 12, 17, 35, 0, time.UTC)
	tests := []struct {
		name  string
		field Field
		want  interface{}
	}{
		{"string", Field{Type: StringType, Str: "x"}, "x"},
		{"int", Field{Type: IntType, Int64: 3}, 3},
		{"int64", Field{Type: Int64Type, Int64: 3}, int64(3)},
		{"bool", Field{Type: BoolType, Int64: 1}, true},
		{"duration", Field{Type: DurationType, Int64: int64(time.Second)}, time.Second},
		{"any", Field{Type: AnyType, Any: []int{1}}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.Value(); fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("Field.Value() = %v, want %v", got, tt.want)
			}
		})
	}

	tf := Field{Type: TimeType, Int64: ts.UnixNano()}
	if got := tf.Value().(time.Time); !got.Equal(ts) {
		t.Errorf("Field.Value() = %v, want %v", got, ts)
	}
}

func TestField_StringValueEdgeCases(t *testing.T) {
	if got := (Field{Type: AnyType}).StringValue(); got != "<nil>" {
		t.Errorf("nil Any = %q", got)
	}
	if got := (Field{Type: AnyType, Any: []string{"a", "b"}}).StringValue(); got != "[a b]" {
		t.Errorf("slice Any = %q", got)
	}
	if got := (Field{Type: FieldType(200), Str: "ignored"}).StringValue(); got != "" {
		t.Errorf("unknown type = %q, want empty", got)
	}
	if got := (Field{Type: FieldType(200)}).Value(); got != nil {
		t.Errorf("unknown type Value() = %v, want nil", got)
	}
	// a marker in a value is just text
	if got := (Field{Type: StringType, Str: "> open"}).StringValue(); got != "> open" {
		t.Errorf("marker value = %q", got)
	}
}

func BenchmarkFieldStringValue(b *testing.B) {
	fields := []Field{
		{Type: StringType, Str: "test"},
		{Type: IntType, Int64: 42},
		{Type: BoolType, Int64: 1},
		{Type: Float64Type, Float64: 3.14},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, f := range fields {
			_ = f.StringValue()
		}
	}
}
