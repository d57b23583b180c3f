package command

// Args holds arguments bound by an adapter, keyed by the declared parameter
// name. Ints are stored as int, user references as the user id string.
type Args map[string]any

// Int returns the named integer argument.
func (a Args) Int(name string) (int, bool) {
	v, ok := a[name].(int)
	return v, ok
}

// String returns the named string argument.
func (a Args) String(name string) (string, bool) {
	v, ok := a[name].(string)
	return v, ok && v != ""
}

// UserID returns the id of the named user-reference argument.
func (a Args) UserID(name string) (string, bool) {
	v, ok := a[name].(string)
	return v, ok && v != ""
}
