package campaign

// Field is a single named cell of a contact row.
type Field struct {
	Name  string
	Value string
}

// Row is one contact row. Fields keep the column order of the source sheet.
type Row []Field

// Get returns the value of the first field with exactly the given name.
func (r Row) Get(name string) (string, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}
