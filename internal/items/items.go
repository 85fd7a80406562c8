package items

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// ErrNoItems is returned when a source parses cleanly but holds no options.
var ErrNoItems = errors.New("no items found")

// List is a titled set of options for the custom picker.
type List struct {
	Title string
	Items []string
}

// Load reads options from a file. The format is picked from the extension:
// .yaml/.yml, .md/.markdown, or plain text with one option per line.
func Load(path string) (List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return List{}, err
	}
	list, err := Parse(filepath.Base(path), data)
	if err != nil {
		return List{}, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Parse decodes options from data, using name only for its extension.
func Parse(name string, data []byte) (List, error) {
	var (
		list List
		err  error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		list, err = parseYAML(data)
	case ".md", ".markdown":
		list, err = parseMarkdown(data)
	default:
		list = parseLines(data)
	}
	if err != nil {
		return List{}, err
	}
	if len(list.Items) == 0 {
		return List{}, ErrNoItems
	}
	return list, nil
}

// parseYAML accepts either a bare sequence or a mapping with title and items.
func parseYAML(data []byte) (List, error) {
	var seq []string
	if err := yaml.Unmarshal(data, &seq); err == nil {
		return List{Items: clean(seq)}, nil
	}

	var doc struct {
		Title string   `yaml:"title"`
		Items []string `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return List{}, err
	}
	return List{Title: strings.TrimSpace(doc.Title), Items: clean(doc.Items)}, nil
}

// parseMarkdown collects the text of every list item. The first level-1
// heading, or a frontmatter title, becomes the list title.
func parseMarkdown(data []byte) (List, error) {
	body, fmTitle, err := stripFrontmatter(data)
	if err != nil {
		return List{}, err
	}

	list := List{Title: fmTitle}

	reader := text.NewReader(body)
	doc := goldmark.DefaultParser().Parse(reader)

	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 1 && list.Title == "" {
				list.Title = strings.TrimSpace(string(node.Text(body)))
			}
		case *ast.ListItem:
			// Only the item's own line; nested lists are visited on their own.
			if first := node.FirstChild(); first != nil {
				if item := strings.TrimSpace(string(first.Text(body))); item != "" {
					list.Items = append(list.Items, item)
				}
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return List{}, err
	}

	return list, nil
}

// stripFrontmatter removes optional YAML frontmatter and returns its title.
func stripFrontmatter(content []byte) ([]byte, string, error) {
	lines := bytes.Split(content, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return content, "", nil
	}

	var frontmatterEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == 0 {
		return content, "", nil
	}

	frontmatterBytes := bytes.Join(lines[1:frontmatterEnd], []byte("\n"))
	var fm struct {
		Title string `yaml:"title"`
	}
	if err := yaml.Unmarshal(frontmatterBytes, &fm); err != nil {
		return nil, "", fmt.Errorf("frontmatter: %w", err)
	}

	body := bytes.TrimLeft(bytes.Join(lines[frontmatterEnd+1:], []byte("\n")), "\n")
	return body, strings.TrimSpace(fm.Title), nil
}

func parseLines(data []byte) List {
	var list List
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			list.Items = append(list.Items, line)
		}
	}
	return list
}

func clean(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
