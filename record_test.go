package dbent

// author is the hand-written equivalent of a dbentgen-generated record:
// first field is the Key, the Name field is the label.
type author struct {
	ID   Key[int64]
	Name string
}

func (a *author) Key() (*Key[int64], error) { return &a.ID, nil }

func (a *author) Label() (*string, error) { return &a.Name, nil }

// book references an author both ways and a list of chapters.
type book struct {
	ID       Key[int64]
	Title    string
	Author   Entity[int64, *author]
	Chapters Many[string]
}

func (b *book) Key() (*Key[int64], error) { return &b.ID, nil }

func (b *book) Label() (*string, error) { return &b.Title, nil }

func newAuthor(id int64, name string) *author {
	return &author{ID: NewKey(id), Name: name}
}
