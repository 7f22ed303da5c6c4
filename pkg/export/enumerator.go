package export

import (
	"github.com/huanfeng/localecsv/pkg/models"
	"github.com/huanfeng/localecsv/pkg/nls"
)

// Visitor is called once per catalog entry. total is the size of the catalog.
type Visitor func(entry models.LocaleEntry, total int)

// Enumerate walks the whole catalog once and calls visit for every entry in catalog order.
// Only a failure of the catalog itself is returned; visitors cannot stop the walk.
func Enumerate(catalog nls.Catalog, visit Visitor) (int, error) {
	entries, err := catalog.Locales()
	if err != nil {
		return 0, err
	}
	for _, entry := range entries {
		visit(entry, len(entries))
	}
	return len(entries), nil
}
