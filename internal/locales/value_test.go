package locales

import (
	"reflect"
	"testing"
)

func TestInterpolationKeys(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"none", "hello world", nil},
		{"single", "hi {name}", []string{"name"}},
		{"multiple sorted", "{b} and {a}", []string{"a", "b"}},
		{"repeated", "{name} {name}", []string{"name"}},
		{"escaped brace", "use {{literal}} braces", nil},
		{"invalid identifier", "not {a name} here", nil},
		{"digit prefix", "{1st}", nil},
		{"unterminated", "oops {name", nil},
		{"mixed", "{{skip}} but {keep}", []string{"keep"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := interpolationKeys(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("interpolationKeys(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestReduceCollapsesLonePluralFallback(t *testing.T) {
	value := reduceValue(&Plurals{Variants: []PluralVariant{{Value: "items"}}})

	literal, ok := value.(*Literal)
	if !ok {
		t.Fatalf("expected a literal after reduce, got %T", value)
	}
	if literal.Value != "items" {
		t.Fatalf("expected collapsed value, got %q", literal.Value)
	}
}

func TestReduceOrdersPluralVariants(t *testing.T) {
	value := reduceValue(&Plurals{Variants: []PluralVariant{
		{Value: "{count} items"},
		{Count: "3", Value: "a few items"},
		{Count: "one", Value: "one item"},
		{Count: "zero", Value: "no items"},
	}})

	plurals, ok := value.(*Plurals)
	if !ok {
		t.Fatalf("expected plurals, got %T", value)
	}

	got := make([]string, 0, len(plurals.Variants))
	for _, variant := range plurals.Variants {
		got = append(got, variant.Count)
	}
	want := []string{"zero", "one", "3", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected variant order %v, got %v", want, got)
	}
}

func TestPluralLeafRequiresCount(t *testing.T) {
	value := &Plurals{Variants: []PluralVariant{
		{Count: "one", Value: "one {thing}"},
		{Value: "{count} things"},
	}}

	got := interpolations(value)
	want := []string{"count", "thing"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected interpolations %v, got %v", want, got)
	}
}

func TestLiteralInterpolations(t *testing.T) {
	if got := interpolations(&Literal{Value: "plain"}); got != nil {
		t.Fatalf("plain literal should need no interpolations, got %v", got)
	}
	if got := interpolations(&DefaultMarker{}); got != nil {
		t.Fatalf("default marker should need no interpolations, got %v", got)
	}
}
