// Package service implements every document mutation and derived view. Each
// operation runs as a single all-or-nothing pass against the document store.
package service

import (
	"time"

	"github.com/google/uuid"
)

// Clock abstracts time so tests control timestamps deterministically.
type Clock interface {
	Now() time.Time
}

// IDGen abstracts id generation for the same reason.
type IDGen interface {
	NewID() string
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

type UUIDGen struct{}

func (UUIDGen) NewID() string { return uuid.NewString() }
