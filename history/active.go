package history

// active is the dataset the running service answers from. Populated once
// in main and treated as immutable afterwards.
var active *Store

// SetActive installs the loaded dataset for the session.
func SetActive(s *Store) {
	active = s
}

// Active returns the session dataset, or nil before loading.
func Active() *Store {
	return active
}
