package store

import (
	"fjacquet/finance-tracker/internal/models"
)

// MockGateway is an in-memory Gateway for tests. It records every save and
// can be told to fail.
type MockGateway struct {
	Transactions []models.Transaction
	Settings     models.Settings

	SaveError         error
	SaveSettingsError error

	SaveCalls         int
	SaveSettingsCalls int
}

// NewMockGateway creates a mock holding the given transactions and default settings.
func NewMockGateway(transactions ...models.Transaction) *MockGateway {
	return &MockGateway{
		Transactions: models.CloneTransactions(transactions),
		Settings:     models.DefaultSettings(),
	}
}

func (m *MockGateway) Load() []models.Transaction {
	return models.CloneTransactions(m.Transactions)
}

func (m *MockGateway) Save(transactions []models.Transaction) error {
	m.SaveCalls++
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Transactions = models.CloneTransactions(transactions)
	return nil
}

func (m *MockGateway) LoadSettings() models.Settings {
	return m.Settings
}

func (m *MockGateway) SaveSettings(settings models.Settings) error {
	m.SaveSettingsCalls++
	if m.SaveSettingsError != nil {
		return m.SaveSettingsError
	}
	m.Settings = settings
	return nil
}

var _ Gateway = (*MockGateway)(nil)
