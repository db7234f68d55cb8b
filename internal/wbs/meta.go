package wbs

import "github.com/steveyegge/wbs/internal/types"

// Metadata operations on the document itself. No cascading.

// SetOwner records who owns the document.
func (d *Document) SetOwner(owner string) error {
	d.Owner = owner
	return nil
}

// SetReferences replaces the document's reference URL list wholesale.
func (d *Document) SetReferences(urls []string) error {
	d.References = urls
	return nil
}

// SetMetaData replaces the document's free-form metadata blob wholesale.
func (d *Document) SetMetaData(format, data string) error {
	d.MetaData = &types.MetaData{Format: format, Data: data}
	return nil
}
