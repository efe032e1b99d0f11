package models

// Organization represents a student organization keyed by its campus code.
// OrgCode is supplied by the caller on creation and never changes afterwards.
type Organization struct {
	OrgCode             string `json:"orgCode" db:"org_code"`
	OrgTranslation      string `json:"orgTranslation" db:"org_translation"`
	OrgTranslationShort string `json:"orgTranslationShort" db:"org_translation_short"`
	Inactive            bool   `json:"inactive" db:"inactive"`
}
