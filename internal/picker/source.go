package picker

// Color is a host-interpreted color specification such as "#ff8800" or "205".
// The zero value means transparent.
type Color string

// CustomView renders an entire cell itself. When an ItemSource supplies one for an
// index, titles and backgrounds are never requested for that index.
type CustomView interface {
	Render(width, height int, selected bool) string
}

// ItemSource reports how many items the picker holds.
type ItemSource interface {
	Count() int
}

// ViewSource is implemented by sources that render some items with a CustomView.
// A nil return falls through to the title path.
type ViewSource interface {
	ViewAt(index int) CustomView
}

// TitleSource is implemented by sources that label items with text.
type TitleSource interface {
	TitleAt(index int) string
}

// BackgroundSource is implemented by sources that color item backgrounds.
type BackgroundSource interface {
	BackgroundAt(index int) Color
}

// Content is the resolved visual content of one item.
type Content struct {
	View       CustomView
	Title      string
	Background Color
}

// Empty reports whether the content renders as a blank transparent cell.
func (c Content) Empty() bool {
	return c.View == nil && c.Title == "" && c.Background == ""
}

// ContentAt resolves the content for index. A custom view takes precedence over the
// title/background pair. Sources that supply nothing for an index, and indexes out
// of range, yield an empty cell instead of an error.
func ContentAt(src ItemSource, index int) Content {
	if src == nil || index < 0 || index >= src.Count() {
		return Content{}
	}

	if vs, ok := src.(ViewSource); ok {
		if view := vs.ViewAt(index); view != nil {
			return Content{View: view}
		}
	}

	var c Content
	if ts, ok := src.(TitleSource); ok {
		c.Title = ts.TitleAt(index)
	}
	if bs, ok := src.(BackgroundSource); ok {
		c.Background = bs.BackgroundAt(index)
	}
	return c
}

// Item is a titled entry of an Items source.
type Item struct {
	Title      string `yaml:"title"`
	Background Color  `yaml:"background,omitempty"`
}

// Items is an in-memory ItemSource.
type Items []Item

// Count returns the number of items.
func (it Items) Count() int { return len(it) }

// TitleAt returns the title of the item at index.
func (it Items) TitleAt(index int) string { return it[index].Title }

// BackgroundAt returns the background of the item at index.
func (it Items) BackgroundAt(index int) Color { return it[index].Background }

// Titles builds an Items source from plain strings.
func Titles(titles ...string) Items {
	items := make(Items, len(titles))
	for i, t := range titles {
		items[i] = Item{Title: t}
	}
	return items
}
