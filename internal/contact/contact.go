// Package contact implements the in-memory username→phone store.
package contact

// Contact is a single phone book entry. Username is the unique key;
// the phone number is stored as an opaque string.
type Contact struct {
	Username string
	Phone    string
}

// Book holds contacts for the duration of one session. It preserves
// insertion order for listing. Book is not safe for concurrent use; the
// bot mutates it from a single command invocation at a time.
type Book struct {
	phones map[string]string
	order  []string
}

// NewBook creates an empty Book.
func NewBook() *Book {
	return &Book{phones: make(map[string]string)}
}

// Get returns the phone for username and whether the contact exists.
func (b *Book) Get(username string) (string, bool) {
	phone, ok := b.phones[username]
	return phone, ok
}

// Contains reports whether a contact with the given username exists.
func (b *Book) Contains(username string) bool {
	_, ok := b.phones[username]
	return ok
}

// Set inserts or overwrites the phone for username. New usernames are
// appended to the listing order; overwrites keep their original position.
func (b *Book) Set(username, phone string) {
	if _, ok := b.phones[username]; !ok {
		b.order = append(b.order, username)
	}
	b.phones[username] = phone
}

// Len returns the number of stored contacts.
func (b *Book) Len() int {
	return len(b.phones)
}

// Entries returns a fresh snapshot of all contacts in insertion order.
func (b *Book) Entries() []Contact {
	entries := make([]Contact, 0, len(b.order))
	for _, username := range b.order {
		entries = append(entries, Contact{Username: username, Phone: b.phones[username]})
	}
	return entries
}
