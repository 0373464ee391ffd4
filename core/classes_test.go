package core

import (
	"reflect"
	"testing"
)

func TestResolveClasses_Partition(t *testing.T) {
	tests := []struct {
		name      string
		labels    any
		instances int
		wantA     string
		wantB     string
		wantColsA []int
		wantColsB []int
	}{
		{
			name:      "string labels keep first-seen order",
			labels:    []string{"pos", "pos", "neg", "neg"},
			instances: 4,
			wantA:     "pos",
			wantB:     "neg",
			wantColsA: []int{0, 1},
			wantColsB: []int{2, 3},
		},
		{
			name:      "int labels ordered ascending",
			labels:    []int{2, 2, 1, 1},
			instances: 4,
			wantA:     "1",
			wantB:     "2",
			wantColsA: []int{2, 3},
			wantColsB: []int{0, 1},
		},
		{
			name:      "bool labels order false before true",
			labels:    []bool{true, false, true, false},
			instances: 4,
			wantA:     "false",
			wantB:     "true",
			wantColsA: []int{1, 3},
			wantColsB: []int{0, 2},
		},
		{
			name:      "interleaved membership",
			labels:    []string{"a", "b", "a", "b", "a", "b"},
			instances: 6,
			wantA:     "a",
			wantB:     "b",
			wantColsA: []int{0, 2, 4},
			wantColsB: []int{1, 3, 5},
		},
		{
			name:      "any container with int elements",
			labels:    []any{int64(7), int64(3), int64(7), int64(3)},
			instances: 4,
			wantA:     "3",
			wantB:     "7",
			wantColsA: []int{1, 3},
			wantColsB: []int{0, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ResolveClasses(tt.labels, tt.instances)
			if err != nil {
				t.Fatalf("ResolveClasses() error = %v", err)
			}
			if p.LabelA != tt.wantA || p.LabelB != tt.wantB {
				t.Errorf("labels = (%q, %q), want (%q, %q)", p.LabelA, p.LabelB, tt.wantA, tt.wantB)
			}
			if !reflect.DeepEqual(p.ClassA, tt.wantColsA) {
				t.Errorf("ClassA = %v, want %v", p.ClassA, tt.wantColsA)
			}
			if !reflect.DeepEqual(p.ClassB, tt.wantColsB) {
				t.Errorf("ClassB = %v, want %v", p.ClassB, tt.wantColsB)
			}
			// 不变式：两类互不相交且并集覆盖全部列
			if len(p.ClassA)+len(p.ClassB) != tt.instances {
				t.Errorf("partition covers %d columns, want %d", len(p.ClassA)+len(p.ClassB), tt.instances)
			}
		})
	}
}

func TestResolveClasses_Errors(t *testing.T) {
	tests := []struct {
		name      string
		labels    any
		instances int
		check     func(error) bool
		code      string
	}{
		{
			name:      "length mismatch",
			labels:    []string{"a", "a", "b", "b"},
			instances: 5,
			check:     IsShapeMismatch,
			code:      ErrorCodeShapeMismatch,
		},
		{
			name:      "three distinct classes",
			labels:    []string{"a", "a", "b", "b", "c", "c"},
			instances: 6,
			check:     IsTooManyClasses,
			code:      ErrorCodeTooManyClasses,
		},
		{
			name:      "single class",
			labels:    []string{"a", "a", "a", "a"},
			instances: 4,
			check:     IsTooFewClasses,
			code:      ErrorCodeTooFewClasses,
		},
		{
			name:      "class with one member",
			labels:    []string{"a", "a", "a", "b"},
			instances: 4,
			check:     IsDegenerateClass,
			code:      ErrorCodeDegenerateClass,
		},
		{
			name:      "float labels unsupported",
			labels:    []float64{0.5, 0.5, 1.5, 1.5},
			instances: 4,
			check:     IsUnsupportedLabelType,
			code:      ErrorCodeUnsupportedLabelType,
		},
		{
			name:      "non-slice container unsupported",
			labels:    "abab",
			instances: 4,
			check:     IsUnsupportedLabelType,
			code:      ErrorCodeUnsupportedLabelType,
		},
		{
			name:      "any container with float element",
			labels:    []any{1, 1, 2.5, 2.5},
			instances: 4,
			check:     IsUnsupportedLabelType,
			code:      ErrorCodeUnsupportedLabelType,
		},
		{
			name:      "any container mixing string and int",
			labels:    []any{"a", "a", 1, 1},
			instances: 4,
			check:     IsUnsupportedLabelType,
			code:      ErrorCodeUnsupportedLabelType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveClasses(tt.labels, tt.instances)
			if err == nil {
				t.Fatal("ResolveClasses() expected error, got nil")
			}
			if !tt.check(err) {
				t.Errorf("error code = %q, want %q (err: %v)", GetDomainError(err).Code, tt.code, err)
			}
		})
	}
}

func TestResolveClasses_TypeCheckBeforeShapeCheck(t *testing.T) {
	// 类型校验先于长度校验：不受支持的容器即使长度也不符，仍报类型错误
	_, err := ResolveClasses([]float64{1, 2}, 4)
	if !IsUnsupportedLabelType(err) {
		t.Errorf("got %v, want UNSUPPORTED_LABEL_TYPE", err)
	}
}
