package parser

import "go.yaml.in/yaml/v4"

// Scalars whose source text is the value. Decoding to any turns an unquoted
// `version: 1.10` into the float 1.1, so these are read from the node tree.
var (
	rootTextFields = []string{"openapi"}
	infoTextFields = []string{"title", "description", "version"}
)

// restoreScalarText overwrites the text fields of data with their source
// spelling taken from root.
func restoreScalarText(root *yaml.Node, data map[string]any) {
	doc := resolveNode(root)
	if doc != nil && doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = resolveNode(doc.Content[0])
	}
	restoreFields(doc, data, rootTextFields)

	info, ok := data["info"].(map[string]any)
	if !ok {
		return
	}
	restoreFields(mappingValue(doc, "info"), info, infoTextFields)
}

func restoreFields(node *yaml.Node, data map[string]any, keys []string) {
	for _, key := range keys {
		if text, ok := scalarText(mappingValue(node, key)); ok {
			data[key] = text
		}
	}
}

// mappingValue returns the value node for key in a mapping node, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return resolveNode(node.Content[i+1])
		}
	}
	return nil
}

// scalarText returns the source text of a non-null scalar node.
func scalarText(node *yaml.Node) (string, bool) {
	if node == nil || node.Kind != yaml.ScalarNode || node.ShortTag() == "!!null" {
		return "", false
	}
	return node.Value, true
}

func resolveNode(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}
