package etl_errors

import (
	"fmt"
)

// ErrDataSource means the upstream market-data provider failed or returned
// no usable data. The pipeline aborts before anything is written.
type ErrDataSource struct {
	Provider string
	Symbol   string
	Err      error
}

func (e ErrDataSource) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("data source %s failed for symbol %s: %v", e.Provider, e.Symbol, e.Err)
	}
	return fmt.Sprintf("data source %s failed: %v", e.Provider, e.Err)
}

func (e ErrDataSource) Unwrap() error {
	return e.Err
}

// ErrPersistence means a store write or read failed. The enclosing
// transaction is rolled back by the caller.
type ErrPersistence struct {
	Op  string
	Err error
}

func (e ErrPersistence) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e ErrPersistence) Unwrap() error {
	return e.Err
}
