package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/hpicker/internal/picker"
)

// itemsDocument is the mapping form of an items file.
type itemsDocument struct {
	Items []yaml.Node `yaml:"items"`
}

// LoadItems reads an items file. The document is either a sequence or a mapping
// with an "items" sequence; each entry is a plain title or a mapping with title and
// background:
//
//	items:
//	  - Inbox
//	  - title: Archive
//	    background: "#303030"
func LoadItems(path string) (picker.Items, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading items file %s: %w", path, err)
	}

	var doc yaml.Node
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing items file %s: %w", path, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return picker.Items{}, nil
	}

	var nodes []yaml.Node
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		err = root.Decode(&nodes)
	case yaml.MappingNode:
		var m itemsDocument
		err = root.Decode(&m)
		nodes = m.Items
	default:
		err = fmt.Errorf("line %d: expected a list of items", root.Line)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing items file %s: %w", path, err)
	}

	items := make(picker.Items, 0, len(nodes))
	for i := range nodes {
		item, decodeErr := decodeItem(&nodes[i])
		if decodeErr != nil {
			return nil, fmt.Errorf("parsing items file %s: item %d: %w", path, i, decodeErr)
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeItem(node *yaml.Node) (picker.Item, error) {
	if node.Kind == yaml.ScalarNode {
		return picker.Item{Title: node.Value}, nil
	}

	var item picker.Item
	if err := node.Decode(&item); err != nil {
		return picker.Item{}, fmt.Errorf("line %d: %w", node.Line, err)
	}
	return item, nil
}

// ReadItems reads one item per non-blank line.
func ReadItems(r io.Reader) (picker.Items, error) {
	var items picker.Items
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, picker.Item{Title: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	return items, nil
}
