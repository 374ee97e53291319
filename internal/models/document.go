package models

import "time"

// Document is an inventory document (receipt, transfer, write-off...).
// Date has day precision.
type Document struct {
	ID             int
	Number         string
	Date           time.Time
	Comment        *string
	CompanyID      *int
	Company        *string
	DocumentTypeID int
	DocumentType   string
}

// DocumentLine moves Quantity of a product between two storage zones.
// A nil sender means stock enters the warehouse, a nil receiver means it leaves.
type DocumentLine struct {
	ID                    int
	Quantity              int
	ActualQuantity        *int
	ProductID             int
	Product               string
	DocumentID            int
	StorageZoneSenderID   *int
	StorageZoneSender     *string
	StorageZoneReceiverID *int
	StorageZoneReceiver   *string
}
