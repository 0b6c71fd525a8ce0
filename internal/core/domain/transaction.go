package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/santisala23-sys/exito/internal/core/calendar"
)

var (
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrInvalidTransactionType  = errors.New("invalid transaction type (must be income or expense)")
	ErrTransactionAmount       = errors.New("transaction amount must be greater than zero")
	ErrTransactionCategory     = errors.New("transaction category is required")
	ErrTransactionDateEmpty    = errors.New("transaction date is required")
	ErrTransactionDescTooLong  = errors.New("transaction description is too long (max 500 chars)")
	ErrTransactionAmountFormat = errors.New("invalid amount format")
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"

	DefaultDescription = "Sin detalle"
	QuickDescription   = "Carga rápida"
	MaxDescLen         = 500
)

var legacyTransactionTypes = map[string]string{
	"ingreso": TransactionIncome,
	"egreso":  TransactionExpense,
}

// IncomeCategories and ExpenseCategories are the suggestions shown when
// adding a movement; any non-blank category is accepted.
var (
	IncomeCategories  = []string{"Honorarios Terapia", "Sueldo / Agencia", "Proyectos Musicales", "Ventas", "Otros"}
	ExpenseCategories = []string{"Supermercado", "Comida / Delivery", "Transporte", "Servicios / Suscripciones", "Salidas", "Proyectos", "Salud", "Otros"}
)

func ParseTransactionType(s string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch t {
	case TransactionIncome, TransactionExpense:
		return t, nil
	}
	if mapped, ok := legacyTransactionTypes[t]; ok {
		return mapped, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTransactionType, s)
}

// ParseAmount reads a decimal amount, accepting a comma as decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if clean == "" {
		return decimal.Zero, ErrTransactionAmount
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrTransactionAmountFormat, s)
	}
	return d, nil
}

// Transaction is a money movement. The sign is implied by Type;
// Amount is never stored negative.
type Transaction struct {
	ID          string          `json:"id" db:"id"`
	Type        string          `json:"transaction_type" db:"transaction_type"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Category    string          `json:"category" db:"category"`
	Description string          `json:"description" db:"description"`
	Date        calendar.Date   `json:"date" db:"date"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

func NewTransaction(tType string, amount decimal.Decimal, category, description string, date calendar.Date) (*Transaction, error) {
	parsedType, err := ParseTransactionType(tType)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, ErrTransactionAmount
	}

	cleanCategory := strings.TrimSpace(category)
	if cleanCategory == "" {
		return nil, ErrTransactionCategory
	}

	if date.IsZero() {
		return nil, ErrTransactionDateEmpty
	}

	cleanDesc := strings.TrimSpace(description)
	if cleanDesc == "" {
		cleanDesc = DefaultDescription
	}
	if utf8.RuneCountInString(cleanDesc) > MaxDescLen {
		return nil, ErrTransactionDescTooLong
	}

	return &Transaction{
		ID:          uuid.NewString(),
		Type:        parsedType,
		Amount:      amount,
		Category:    cleanCategory,
		Description: cleanDesc,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
