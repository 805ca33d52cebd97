package locales

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// localeSeed threads decode context (locale identity, current key path)
// through every nested node so failures report exactly where in the logical
// tree they happened, not just a byte offset. JSON documents are well-formed
// YAML, so a single node walk serves both configured formats while keeping
// line and column information on every node.
type localeSeed struct {
	name      Key
	topLocale Key
	path      KeyPath
	interner  *Interner
	file      string
}

func (s *localeSeed) decode(data []byte) (*Locale, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, s.deserError(nil, err)
	}

	node := documentContent(&root)
	if node == nil || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		// An empty file is an empty mapping.
		return &Locale{Name: s.name, TopLocale: s.topLocale, Keys: map[Key]ParsedValue{}}, nil
	}

	keys, err := s.visitMapping(node)
	if err != nil {
		return nil, err
	}
	return &Locale{Name: s.name, TopLocale: s.topLocale, Keys: keys}, nil
}

func (s *localeSeed) visitMapping(node *yaml.Node) (map[Key]ParsedValue, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return nil, s.deserError(node, errors.New("expected a map of string keys to string or map values"))
	}

	keys := make(map[Key]ParsedValue, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, s.deserError(keyNode, errors.New("expected a string key"))
		}

		key := s.interner.Intern(keyNode.Value)
		s.path.Push(key)
		value, err := s.visitValue(key, valueNode)
		s.path.Pop()
		if err != nil {
			return nil, err
		}
		// Duplicate keys follow the format's own map semantics: last
		// write wins.
		keys[key] = value
	}
	return keys, nil
}

func (s *localeSeed) visitValue(key Key, node *yaml.Node) (ParsedValue, error) {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return &DefaultMarker{}, nil
		}
		return &Literal{Value: node.Value}, nil
	case yaml.MappingNode:
		keys, err := s.visitMapping(node)
		if err != nil {
			return nil, err
		}
		return &Subkeys{Tree: &Locale{
			Name:      key,
			TopLocale: s.topLocale,
			Keys:      keys,
		}}, nil
	case yaml.SequenceNode:
		return s.visitPlurals(node)
	default:
		return nil, s.deserError(node, errors.New("expected a string, map, or plural list value"))
	}
}

func (s *localeSeed) visitPlurals(node *yaml.Node) (ParsedValue, error) {
	variants := make([]PluralVariant, 0, len(node.Content))
	for _, item := range node.Content {
		item = resolveAlias(item)
		switch item.Kind {
		case yaml.ScalarNode:
			variants = append(variants, PluralVariant{Value: item.Value})
		case yaml.MappingNode:
			variant, err := s.visitPluralVariant(item)
			if err != nil {
				return nil, err
			}
			variants = append(variants, variant)
		default:
			return nil, s.deserError(item, errors.New("expected a string or {count, value} plural variant"))
		}
	}
	if len(variants) == 0 {
		return nil, s.deserError(node, errors.New("plural list cannot be empty"))
	}
	return &Plurals{Variants: variants}, nil
}

func (s *localeSeed) visitPluralVariant(node *yaml.Node) (PluralVariant, error) {
	variant := PluralVariant{}
	haveValue := false
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := resolveAlias(node.Content[i+1])
		if valueNode.Kind != yaml.ScalarNode {
			return PluralVariant{}, s.deserError(valueNode, errors.New("plural variant fields must be scalars"))
		}
		switch keyNode.Value {
		case "count":
			variant.Count = valueNode.Value
		case "value":
			variant.Value = valueNode.Value
			haveValue = true
		default:
			return PluralVariant{}, s.deserError(keyNode, fmt.Errorf("unknown plural variant field %q", keyNode.Value))
		}
	}
	if !haveValue {
		return PluralVariant{}, s.deserError(node, errors.New("plural variant requires a value field"))
	}
	return variant, nil
}

func (s *localeSeed) deserError(node *yaml.Node, err error) error {
	deser := &DeserError{
		File:   s.file,
		Locale: s.topLocale,
		Path:   s.path.Clone(),
		Err:    err,
	}
	if node != nil {
		deser.Line = node.Line
		deser.Column = node.Column
	}
	return deser
}

func documentContent(root *yaml.Node) *yaml.Node {
	if root == nil {
		return nil
	}
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		return root.Content[0]
	}
	if root.Kind == 0 {
		return nil
	}
	return root
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
