package mocks

import (
	"fmt"
	"sync"

	"github.com/sgaunet/humantime/pkg/humanize"
)

// FormatterCall records the arguments of one DateHumanize call.
type FormatterCall struct {
	Unit     humanize.Unit
	Tense    humanize.Tense
	Quantity int
	Mode     humanize.QuantityMode
}

// String renders the call as "unit/quantity/tense", e.g. "minute/1/past".
func (c FormatterCall) String() string {
	return fmt.Sprintf("%s/%d/%s", c.Unit, c.Quantity, c.Tense)
}

// MockFormatter is a mock implementation of humanize.Formatter for testing.
// By default it returns the String form of each call.
type MockFormatter struct {
	mu sync.Mutex

	DateHumanizeResponse string
	DateHumanizeError    error
	NeverResponse        string
	CallHistory          []FormatterCall
	CallCount            map[string]int
}

// NewMockFormatter creates a new mock formatter.
func NewMockFormatter() *MockFormatter {
	return &MockFormatter{
		NeverResponse: "never",
		CallHistory:   []FormatterCall{},
		CallCount:     make(map[string]int),
	}
}

// DateHumanize implements humanize.Formatter interface.
func (m *MockFormatter) DateHumanize(
	unit humanize.Unit, tense humanize.Tense, quantity int, mode humanize.QuantityMode,
) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	call := FormatterCall{Unit: unit, Tense: tense, Quantity: quantity, Mode: mode}
	m.CallHistory = append(m.CallHistory, call)
	m.CallCount["DateHumanize"]++

	if m.DateHumanizeError != nil {
		return "", m.DateHumanizeError
	}
	if m.DateHumanizeResponse != "" {
		return m.DateHumanizeResponse, nil
	}
	return call.String(), nil
}

// Never implements humanize.NeverFormatter interface.
func (m *MockFormatter) Never() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount["Never"]++
	return m.NeverResponse
}

// GetLastCall returns the last DateHumanize call recorded.
func (m *MockFormatter) GetLastCall() FormatterCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.CallHistory) == 0 {
		return FormatterCall{}
	}
	return m.CallHistory[len(m.CallHistory)-1]
}

// GetCallCountFor returns the number of times a method was called.
func (m *MockFormatter) GetCallCountFor(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount[method]
}
