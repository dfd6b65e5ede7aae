package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category maps a destination folder name to the file extensions that
// belong in it.
type Category struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

func (c *Category) normalize() {
	exts := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	c.Extensions = exts
}

// Categories is an ordered category map. Lookup is first match in
// declaration order, so the order read from the file is kept.
type Categories []Category

// Lookup returns the name of the first category listing ext. ext is
// compared case-insensitively and must include the leading dot.
func (cs Categories) Lookup(ext string) (string, bool) {
	ext = strings.ToLower(ext)
	for _, c := range cs {
		for _, e := range c.Extensions {
			if e == ext {
				return c.Name, true
			}
		}
	}
	return "", false
}

// UnmarshalYAML decodes a YAML mapping of name -> extension list while
// keeping the mapping's key order.
func (cs *Categories) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("categories: expected a mapping, got %s", nodeKind(node))
	}

	out := make(Categories, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var c Category
		if err := node.Content[i].Decode(&c.Name); err != nil {
			return fmt.Errorf("categories: key at line %d: %w", node.Content[i].Line, err)
		}
		if err := node.Content[i+1].Decode(&c.Extensions); err != nil {
			return fmt.Errorf("categories: %q at line %d: %w", c.Name, node.Content[i+1].Line, err)
		}
		out = append(out, c)
	}
	*cs = out
	return nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "mapping"
	}
}

// DefaultCategories returns the built-in downloads layout.
func DefaultCategories() Categories {
	return Categories{
		{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp", ".heic", ".tiff", ".ico"}},
		{Name: "Documents", Extensions: []string{".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".xls", ".xlsx", ".csv", ".ppt", ".pptx", ".md", ".epub"}},
		{Name: "Videos", Extensions: []string{".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".webm", ".m4v"}},
		{Name: "Audio", Extensions: []string{".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a", ".wma"}},
		{Name: "Archives", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".tgz"}},
		{Name: "Installers", Extensions: []string{".exe", ".msi", ".msix", ".dmg", ".pkg", ".deb", ".rpm", ".appimage"}},
		{Name: "Code", Extensions: []string{".js", ".ts", ".py", ".go", ".java", ".c", ".cpp", ".h", ".rs", ".json", ".yaml", ".yml", ".html", ".css", ".sh"}},
	}
}
