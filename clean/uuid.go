package clean

import (
	"github.com/go-sif/tidy/errors"
	"github.com/gofrs/uuid"
)

// uuidGroups are the 8-4-4-4-12 group boundaries of a hyphenated UUID
var uuidGroups = []int{8, 12, 16, 20, 32}

// MakeUUID formats a 32-character id as a hyphenated UUID (8-4-4-4-12). Hexadecimal ids, and
// ids which are already canonical, are returned in lower case. Other 32-character ids are
// grouped as they are.
func MakeUUID(id string) (string, error) {
	u, err := uuid.FromString(id)
	if err == nil {
		return u.String(), nil
	}
	if len(id) != 32 {
		return "", errors.InvalidArgumentError{Name: "id", Reason: err.Error()}
	}
	res := make([]byte, 0, 36)
	start := 0
	for i, end := range uuidGroups {
		if i > 0 {
			res = append(res, '-')
		}
		res = append(res, id[start:end]...)
		start = end
	}
	return string(res), nil
}
