package models

type StorageZone struct {
	ID                 int
	Name               string
	Comment            *string
	StorageConditionID int
	StorageCondition   string
}
