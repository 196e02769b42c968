package nav

// RowKind distinguishes header rows from page rows.
type RowKind int

const (
	RowPage RowKind = iota
	RowHeader
)

func (k RowKind) String() string {
	switch k {
	case RowHeader:
		return "header"
	default:
		return "page"
	}
}

// Row is one rendered line of the navigator. Header rows carry only Label.
// Index is the page's position in the host's list; headers share the index of
// the page they precede.
type Row struct {
	Kind     RowKind
	Index    int
	Label    string
	Icon     string
	URL      string
	ScriptID string
	Active   bool
}

// Navigable reports whether clicking the row should dispatch a page change.
func (r Row) Navigable() bool {
	return r.Kind == RowPage && r.URL != ""
}

// URLResolver turns a page into the link the host will navigate to.
type URLResolver interface {
	ResolveURL(basePath string, page Page, index int) string
}

// URLResolverFunc adapts a plain function to URLResolver.
type URLResolverFunc func(basePath string, page Page, index int) string

func (f URLResolverFunc) ResolveURL(basePath string, page Page, index int) string {
	return f(basePath, page, index)
}

// BuildRows maps pages to rows in list order, inserting a header row before
// every page whose index appears in headers. Lists shorter than two pages
// produce no rows at all.
func BuildRows(pages []Page, current, basePath string, headers HeaderMap, resolver URLResolver) []Row {
	if len(pages) < 2 {
		return nil
	}
	rows := make([]Row, 0, len(pages)+headers.InRange(len(pages)))
	for i, page := range pages {
		if label, ok := headers[i]; ok {
			rows = append(rows, Row{Kind: RowHeader, Index: i, Label: label})
		}
		row := Row{
			Kind:     RowPage,
			Index:    i,
			Label:    page.Label(),
			ScriptID: page.ScriptID,
			Active:   page.ScriptID == current,
		}
		if page.HasIcon() {
			row.Icon = page.Icon
		}
		if resolver != nil {
			row.URL = resolver.ResolveURL(basePath, page, i)
		}
		rows = append(rows, row)
	}
	return rows
}

// ActiveRow returns the position of the active page row, or -1.
func ActiveRow(rows []Row) int {
	for i, row := range rows {
		if row.Kind == RowPage && row.Active {
			return i
		}
	}
	return -1
}
