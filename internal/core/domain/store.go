package domain

// StoreProfile describes the seller's store. StoreName is fixed at store
// creation; only the owner name and address are editable afterwards.
type StoreProfile struct {
	StoreID   int64
	StoreName string
	OwnerName string
	Address   string
}

// StoreDraft holds the editable profile fields. Drafts live only in the
// edit form; they are committed to the server and to the session on
// explicit save and discarded otherwise.
type StoreDraft struct {
	OwnerName string
	Address   string
}
