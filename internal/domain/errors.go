package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySnapshot     = errors.New("snapshot is empty")
	ErrMalformedSnapshot = errors.New("snapshot has no \"rates\" object")
	ErrNoArguments       = errors.New("no arguments")
)

// InvalidRateError reports a snapshot entry whose value is not a finite
// positive number.
type InvalidRateError struct {
	Code  string
	Value string
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid rate value for %s: %s", e.Code, e.Value)
}

// UnknownArgumentError reports a dash-prefixed token that is not one of the
// recognized flags.
type UnknownArgumentError struct {
	Token string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument: %s", e.Token)
}

// UnknownExpressionError carries every character of the expression that the
// classifier could not place, in order of appearance.
type UnknownExpressionError struct {
	Fragment string
}

func (e *UnknownExpressionError) Error() string {
	return fmt.Sprintf("unknown expression: %s", e.Fragment)
}

// CurrencySide tells which half of a conversion request a code came from.
type CurrencySide int

const (
	SideFrom CurrencySide = iota
	SideTo
)

// UnknownCurrencyError reports a requested code that is absent from the
// rate table.
type UnknownCurrencyError struct {
	Code string
	Side CurrencySide
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("did not find currency %s", e.Code)
}
