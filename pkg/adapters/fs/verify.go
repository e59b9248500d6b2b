package fs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Verify checks that the directory holds a complete source: a parseable tree
// index whose baskets all have a folder with a properties file, and a tag
// registry. Every problem found is reported.
func (d *Directory) Verify() error {
	var errs []error

	treePath := d.fsys.Join(BasketsDir, TreeFile)
	data, err := readFile(d.fsys, treePath)
	if err != nil {
		return fmt.Errorf("missing tree index %s: %w", treePath, err)
	}

	index := etree.NewDocument()
	if err := index.ReadFromBytes(data); err != nil {
		return fmt.Errorf("failed to parse %s: %w", treePath, err)
	}
	root := index.Root()
	if root == nil || root.Tag != "basketTree" {
		return fmt.Errorf("%s: root element is not basketTree", treePath)
	}

	var check func(parent *etree.Element)
	check = func(parent *etree.Element) {
		for _, b := range parent.SelectElements("basket") {
			name := ""
			if n := b.FindElement("properties/name"); n != nil {
				name = n.Text()
			}
			folder := strings.TrimSuffix(b.SelectAttrValue("folderName", ""), "/")
			if folder == "" {
				errs = append(errs, fmt.Errorf("basket %q has no folderName", name))
			} else {
				props := d.fsys.Join(BasketsDir, folder, PropertiesFile)
				if _, err := d.fsys.Stat(props); err != nil {
					errs = append(errs, fmt.Errorf("basket %q: missing %s: %w", name, props, err))
				}
			}
			check(b)
		}
	}
	check(root)

	if _, err := d.fsys.Stat(TagsFile); err != nil {
		errs = append(errs, fmt.Errorf("missing tag registry: %w", err))
	}

	if len(errs) == 0 {
		d.logger.Debug("source directory verified", "path", d.Path)
	}
	return errors.Join(errs...)
}
