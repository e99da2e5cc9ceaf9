package store

// DateLayout is the ISO-8601 form used for Post.Date (UTC, millisecond precision).
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

type Site struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type Post struct {
	ID      string `json:"id"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt"`
	HTML    string `json:"html"`
}

// Document is the whole persistent state: site metadata plus posts, newest first.
type Document struct {
	Site  Site   `json:"site"`
	Posts []Post `json:"posts"`
}

func (d *Document) Titles() map[string]struct{} {
	titles := make(map[string]struct{}, len(d.Posts))
	for _, p := range d.Posts {
		titles[p.Title] = struct{}{}
	}
	return titles
}

func (d *Document) HasTitle(title string) bool {
	for _, p := range d.Posts {
		if p.Title == title {
			return true
		}
	}
	return false
}

func (d *Document) HasSlug(slug string) bool {
	for _, p := range d.Posts {
		if p.Slug == slug {
			return true
		}
	}
	return false
}

func (d *Document) Prepend(post Post) {
	d.Posts = append([]Post{post}, d.Posts...)
}
