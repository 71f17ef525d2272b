package mocks

// MockPrompter is a mock implementation of ui.OptionPrompter for testing.
type MockPrompter struct {
	StrategyResponse  string
	PrecisionResponse float64
	LocaleResponse    string
	QuantityResponse  string
	Error             error
	CallHistory       []string
	CallCount         map[string]int
}

// NewMockPrompter creates a new mock prompter.
func NewMockPrompter() *MockPrompter {
	return &MockPrompter{
		CallHistory: []string{},
		CallCount:   make(map[string]int),
	}
}

func (m *MockPrompter) record(call string) {
	m.CallHistory = append(m.CallHistory, call)
	m.CallCount[call]++
}

// SelectStrategy implements ui.OptionPrompter interface.
func (m *MockPrompter) SelectStrategy(current string) (string, error) {
	m.record("SelectStrategy")
	return m.StrategyResponse, m.Error
}

// AskPrecision implements ui.OptionPrompter interface.
func (m *MockPrompter) AskPrecision(current float64) (float64, error) {
	m.record("AskPrecision")
	return m.PrecisionResponse, m.Error
}

// SelectLocale implements ui.OptionPrompter interface.
func (m *MockPrompter) SelectLocale(tags []string, current string) (string, error) {
	m.record("SelectLocale")
	return m.LocaleResponse, m.Error
}

// SelectQuantityMode implements ui.OptionPrompter interface.
func (m *MockPrompter) SelectQuantityMode(current string) (string, error) {
	m.record("SelectQuantityMode")
	return m.QuantityResponse, m.Error
}

// GetCallCountFor returns the number of times a method was called.
func (m *MockPrompter) GetCallCountFor(method string) int {
	return m.CallCount[method]
}
