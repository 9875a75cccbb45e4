// Package seed provides the links a form session starts with.
//
// Seeds are read once at startup and never written back; edits live only
// in memory for the session.
package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/linkform/internal/model"
)

// Default is the list shown when no seed file is configured.
func Default() []model.Link {
	return []model.Link{
		{Title: "google", URL: "https://google.com"},
		{Title: "youtube", URL: "https://youtube.com"},
		{Title: "facebook", URL: "https://facebook.com"},
		{Title: "twitter", URL: "https://twitter.com"},
	}
}

// Load reads links from path. An empty path yields Default. The format is
// picked from the extension: .json, .yaml/.yml, or .html/.htm (bookmark
// exports and plain pages; every <a href> becomes a link).
func Load(path string) ([]model.Link, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ParseJSON(b)
	case ".yaml", ".yml":
		return ParseYAML(b)
	case ".html", ".htm":
		return ParseHTML(b)
	default:
		return nil, fmt.Errorf("seed %s: unsupported extension %q", filepath.Base(path), ext)
	}
}

func ParseJSON(b []byte) ([]model.Link, error) {
	links := []model.Link{}
	if len(bytes.TrimSpace(b)) == 0 {
		return links, nil
	}
	if err := json.Unmarshal(b, &links); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return links, nil
}

// ParseYAML accepts either a bare list or a document with a `links` key.
func ParseYAML(b []byte) ([]model.Link, error) {
	links := []model.Link{}
	if len(bytes.TrimSpace(b)) == 0 {
		return links, nil
	}
	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.MappingNode {
		var doc struct {
			Links []model.Link `yaml:"links"`
		}
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("yaml decode: %w", err)
		}
		if doc.Links != nil {
			links = doc.Links
		}
		return links, nil
	}
	if err := node.Decode(&links); err != nil {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	return links, nil
}

// ParseHTML collects anchors in document order. The anchor text is the
// title; anchors without href are skipped.
func ParseHTML(b []byte) ([]model.Link, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	links := []model.Link{}
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		title := strings.Join(strings.Fields(s.Text()), " ")
		links = append(links, model.Link{Title: title, URL: href})
	})
	return links, nil
}
