package models

import "github.com/google/uuid"

// ProviderCredential identifies accounts backed by an email+password credential
const ProviderCredential = "credential"

// Account links a user to a credential provider. For the credential provider
// the Password column holds the bcrypt hash.
type Account struct {
	BaseModel
	AccountID  string    `json:"account_id" gorm:"uniqueIndex:idx_accounts_provider_account;not null;size:255"`
	ProviderID string    `json:"provider_id" gorm:"uniqueIndex:idx_accounts_provider_account;not null;size:50"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Password   string    `json:"-" gorm:"type:text"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Account
func (Account) TableName() string {
	return "accounts"
}
