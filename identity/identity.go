// Package identity validates national personal identity codes and
// decodes the birth date they embed.
package identity

import "time"

// Validator checks a personal identity code and exposes the birth date
// encoded in it. Implementations are jurisdiction specific; the
// decision engine only depends on this interface.
type Validator interface {
	Valid(code string) bool
	BirthDate(code string) (time.Time, error)
}
